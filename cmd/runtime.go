package cmd

import (
	"context"
	"math/rand/v2"

	"github.com/arcanaland/eventtarot/internal/asset"
	"github.com/arcanaland/eventtarot/internal/config"
	"github.com/arcanaland/eventtarot/internal/deck"
	"github.com/arcanaland/eventtarot/internal/reading"
	"github.com/arcanaland/eventtarot/internal/spread"
)

// loadDeck loads the configured catalog, requiring every spread position to
// have at least one eligible card
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		path = cfg.Deck.Path
	}
	return deck.LoadDeck(path, spread.Categories(spread.Positions)...)
}

func newLocator(ctx context.Context) (*asset.Locator, error) {
	if err := cfg.Validate(config.NeedDrive); err != nil {
		return nil, err
	}

	searcher, err := asset.NewDriveSearcher(ctx, asset.DriveConfig{
		APIKey:   cfg.Google.APIKey,
		FolderID: cfg.Google.FolderID,
		RateLimit: asset.RateLimitConfig{
			RequestsPerSecond: cfg.Remote.RequestsPerSecond,
			BurstSize:         cfg.Remote.Burst,
		},
	})
	if err != nil {
		return nil, &config.ConfigError{Source: cfg.Source, Err: err}
	}

	return asset.NewLocator(searcher, asset.NewCache(),
		asset.WithLookupTimeout(cfg.Remote.LookupTimeout),
		asset.WithLookupAttempts(cfg.Remote.LookupAttempts),
		asset.WithLocatorLogger(logger.Named("locator")),
	), nil
}

// newOrchestrator wires the deck, the Drive locator and the downloader. A nil
// rng draws from the global random source.
func newOrchestrator(ctx context.Context, rng *rand.Rand) (*reading.Orchestrator, error) {
	d, err := loadDeck("")
	if err != nil {
		return nil, err
	}

	locator, err := newLocator(ctx)
	if err != nil {
		return nil, err
	}

	acquirer := asset.NewHTTPAcquirer(cfg.Remote.DownloadURL, cfg.Remote.DownloadTimeout)

	return reading.New(spread.NewSelector(d, rng), locator, acquirer,
		reading.WithLogger(logger.Named("reading")),
	), nil
}
