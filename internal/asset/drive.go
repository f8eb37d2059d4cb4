package asset

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// rateLimitBackoff is how long searches pause after Drive answers 429
const rateLimitBackoff = 30 * time.Second

// Searcher finds a file by exact name in the remote store. found is false
// when the search succeeded without a match.
type Searcher interface {
	Search(ctx context.Context, fileName string) (remoteID string, found bool, err error)
}

// DriveConfig holds the settings needed to search a Drive folder
type DriveConfig struct {
	APIKey    string
	FolderID  string
	RateLimit RateLimitConfig

	// Endpoint and HTTPClient override the Drive API location and transport
	Endpoint   string
	HTTPClient *http.Client
}

// DriveSearcher searches a single Drive folder with an API key
type DriveSearcher struct {
	svc      *drive.Service
	folderID string
	limiter  *RateLimiter
}

// NewDriveSearcher creates a Drive API client scoped to cfg.FolderID
func NewDriveSearcher(ctx context.Context, cfg DriveConfig) (*DriveSearcher, error) {
	if cfg.FolderID == "" {
		return nil, errors.New("drive folder id is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &DriveSearcher{
		svc:      svc,
		folderID: cfg.FolderID,
		limiter:  NewRateLimiter(cfg.RateLimit),
	}, nil
}

// Search looks for a non-trashed file called fileName directly inside the
// folder and returns the id of the first match.
func (s *DriveSearcher) Search(ctx context.Context, fileName string) (string, bool, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", false, fmt.Errorf("rate limit wait: %w", err)
	}

	list, err := s.svc.Files.List().
		Q(SearchQuery(fileName, s.folderID)).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		if isRateLimited(err) {
			s.limiter.Backoff(rateLimitBackoff)
		}
		return "", false, fmt.Errorf("list files: %w", err)
	}

	if len(list.Files) == 0 {
		return "", false, nil
	}
	return list.Files[0].Id, true, nil
}

// SearchQuery builds the Drive query matching fileName inside folderID
func SearchQuery(fileName, folderID string) string {
	return fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false",
		escapeQuery(fileName), escapeQuery(folderID))
}

// escapeQuery escapes a value for use inside a single-quoted Drive query string
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
