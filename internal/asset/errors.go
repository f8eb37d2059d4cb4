package asset

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotFound indicates the search succeeded but no file has the name.
	ErrNotFound = errors.New("asset: not found")

	// ErrLookupFailed indicates the search itself failed (network, HTTP
	// status, timeout). It is never cached.
	ErrLookupFailed = errors.New("asset: lookup failed")

	// ErrAcquisition indicates the image could not be downloaded or decoded.
	ErrAcquisition = errors.New("asset: acquisition failed")
)

// isRetryable reports whether a search error is worth another attempt.
// Credential and permission problems will not go away on retry.
func isRetryable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return false
		}
	}
	return true
}

// isRateLimited reports whether Drive rejected the request for quota reasons
func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}
