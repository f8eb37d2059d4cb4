package asset

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Acquirer defaults
const (
	DefaultDownloadURL     = "https://drive.google.com/uc"
	DefaultDownloadTimeout = 30 * time.Second
)

// HTTPAcquirer downloads card images through Drive's direct download link
type HTTPAcquirer struct {
	client      *resty.Client
	downloadURL string
	timeout     time.Duration
}

// NewHTTPAcquirer creates an acquirer. An empty downloadURL uses
// DefaultDownloadURL and a non-positive timeout DefaultDownloadTimeout.
func NewHTTPAcquirer(downloadURL string, timeout time.Duration) *HTTPAcquirer {
	if downloadURL == "" {
		downloadURL = DefaultDownloadURL
	}
	if timeout <= 0 {
		timeout = DefaultDownloadTimeout
	}

	return &HTTPAcquirer{
		client:      resty.New(),
		downloadURL: downloadURL,
		timeout:     timeout,
	}
}

// DownloadLink returns the direct download link for a remote id
func (a *HTTPAcquirer) DownloadLink(remoteID string) string {
	return a.downloadURL + "?" + url.Values{"id": {remoteID}}.Encode()
}

// Acquire downloads the image with the given remote id, rotates it 180° when
// reversed is set and returns it PNG encoded. Every failure wraps
// ErrAcquisition.
func (a *HTTPAcquirer) Acquire(ctx context.Context, remoteID string, reversed bool) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	res, err := a.client.R().
		SetContext(ctx).
		Get(a.DownloadLink(remoteID))
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrAcquisition, remoteID, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: download %s: status code %d", ErrAcquisition, remoteID, res.StatusCode())
	}

	img, err := Transform(res.Body(), reversed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAcquisition, remoteID, err)
	}
	return img, nil
}
