// Package common defines shared sentinel errors used across the onboarding
// client and the mock API. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (business-rule violations caught before any network call).
	ErrorValidation = errors.New("validation error")

	// Attachment errors.
	ErrNoLiveFile       = errors.New("attachment holds no live file")
	ErrMalformedDataRef = errors.New("malformed encoded file reference")
)
