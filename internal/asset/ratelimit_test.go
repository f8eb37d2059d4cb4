package asset

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestRateLimiter_BackoffDelaysWait(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})

	r.Backoff(60 * time.Millisecond)

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRateLimiter_BackoffNeverShortens(t *testing.T) {
	r := NewRateLimiter(DefaultRateLimit)

	r.Backoff(time.Hour)
	r.Backoff(time.Millisecond)

	assert.WithinDuration(t, time.Now().Add(time.Hour), r.retryAt, time.Minute)
}

func TestRateLimiter_WaitReturnsOnCancel(t *testing.T) {
	r := NewRateLimiter(DefaultRateLimit)
	r.Backoff(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Wait(ctx), context.Canceled)
}

func TestRateLimiter_WithoutBackoffDoesNotBlock(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})

	start := time.Now()
	for i := 0; i < DefaultRateLimit.BurstSize; i++ {
		require.NoError(t, r.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
		limited   bool
	}{
		{name: "too many requests", err: &googleapi.Error{Code: http.StatusTooManyRequests}, retryable: true, limited: true},
		{name: "server error", err: &googleapi.Error{Code: http.StatusInternalServerError}, retryable: true},
		{name: "bad request", err: &googleapi.Error{Code: http.StatusBadRequest}},
		{name: "unauthorized", err: &googleapi.Error{Code: http.StatusUnauthorized}},
		{name: "forbidden", err: &googleapi.Error{Code: http.StatusForbidden}},
		{name: "network", err: context.DeadlineExceeded, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryable(tt.err))
			assert.Equal(t, tt.limited, isRateLimited(tt.err))
		})
	}
}
