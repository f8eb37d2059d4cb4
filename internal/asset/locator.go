package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Locator defaults
const (
	DefaultLookupTimeout  = 15 * time.Second
	DefaultLookupAttempts = 2
	DefaultRetryDelay     = 500 * time.Millisecond
)

// Locator resolves file names to remote ids through a Searcher, remembering
// every definitive answer (found or not found) in a shared Cache. Lookup
// failures are retried and never cached. Concurrent lookups of one name
// share a single search.
type Locator struct {
	searcher Searcher
	cache    *Cache
	logger   *zap.Logger

	timeout    time.Duration
	attempts   uint
	retryDelay time.Duration

	group singleflight.Group
}

// LocatorOption configures a Locator
type LocatorOption func(*Locator)

// WithLookupTimeout bounds each search attempt
func WithLookupTimeout(d time.Duration) LocatorOption {
	return func(l *Locator) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithLookupAttempts sets how many times a failed search is tried in total
func WithLookupAttempts(n uint) LocatorOption {
	return func(l *Locator) {
		if n > 0 {
			l.attempts = n
		}
	}
}

// WithRetryDelay sets the pause between search attempts
func WithRetryDelay(d time.Duration) LocatorOption {
	return func(l *Locator) {
		if d >= 0 {
			l.retryDelay = d
		}
	}
}

// WithLocatorLogger sets the logger
func WithLocatorLogger(logger *zap.Logger) LocatorOption {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLocator creates a locator. cache may be shared between locators; a nil
// cache gets a private one.
func NewLocator(searcher Searcher, cache *Cache, opts ...LocatorOption) *Locator {
	if cache == nil {
		cache = NewCache()
	}

	l := &Locator{
		searcher:   searcher,
		cache:      cache,
		logger:     zap.NewNop(),
		timeout:    DefaultLookupTimeout,
		attempts:   DefaultLookupAttempts,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the remote id for fileName. The error wraps ErrNotFound
// when the store has no such file and ErrLookupFailed when the store could
// not be searched. The shared search is detached from ctx, bounded by the
// lookup timeout, so one caller giving up does not fail the others waiting
// on the same name.
func (l *Locator) Locate(ctx context.Context, fileName string) (string, error) {
	if loc, ok := l.cache.Get(fileName); ok {
		return loc.result(fileName)
	}

	searchCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(fileName, func() (any, error) {
		// another caller may have filled the cache while we waited
		if loc, ok := l.cache.Get(fileName); ok {
			return loc, nil
		}

		loc, err := l.search(searchCtx, fileName)
		if err != nil {
			return Location{}, err
		}
		l.cache.Put(fileName, loc)
		return loc, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %s: %v", ErrLookupFailed, fileName, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return "", res.Err
	}

	loc := res.Val.(Location)
	l.logger.Debug("asset located",
		zap.String("file", fileName),
		zap.Bool("found", loc.Found),
		zap.String("remote_id", loc.RemoteID),
		zap.Bool("shared", res.Shared))
	return loc.result(fileName)
}

// Cache returns the cache backing the locator
func (l *Locator) Cache() *Cache {
	return l.cache
}

func (l *Locator) search(ctx context.Context, fileName string) (Location, error) {
	var loc Location

	err := retry.Do(
		func() error {
			attemptCtx, cancel := context.WithTimeout(ctx, l.timeout)
			defer cancel()

			id, found, err := l.searcher.Search(attemptCtx, fileName)
			if err != nil {
				if !isRetryable(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			loc = Location{Found: found, RemoteID: id}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(l.attempts),
		retry.Delay(l.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			l.logger.Warn("asset lookup failed, retrying",
				zap.String("file", fileName),
				zap.Uint("attempt", n+1),
				zap.Error(err))
		}),
	)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %s: %v", ErrLookupFailed, fileName, err)
	}

	return loc, nil
}

func (loc Location) result(fileName string) (string, error) {
	if !loc.Found {
		return "", fmt.Errorf("%w: %s", ErrNotFound, fileName)
	}
	return loc.RemoteID, nil
}
