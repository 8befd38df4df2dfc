package domain

import "errors"

// Sentinel errors for cross-provider error classification. Providers
// wrap these so the CLI can handle error categories uniformly without
// importing provider-specific SDKs.
//
//	return fmt.Errorf("failed to read zone: %w", domain.ErrZoneUnavailable)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrZoneUnavailable indicates the authoritative zone could not be
	// read at all. Classification is meaningless without a snapshot,
	// so callers abort the run on this error.
	ErrZoneUnavailable = errors.New("zone unavailable")

	// ErrAborted indicates the operator declined the confirmation gate.
	ErrAborted = errors.New("aborted by user")
)
