// Package api provides the thin HTTP adapter the onboarding client talks to
// the backend through. It exposes generic verb helpers plus a multipart
// upload; every non-2xx response is turned into an *Error carrying the
// best-effort message extracted from the response payload, which the form
// layer shows to the user as-is.
package api

import (
	"context"
	"fmt"

	"github.com/winkhq/onboard/internal/client/models"
)

// RequestOptions carries optional per-request settings. Cancellation comes
// from the context passed to each call.
type RequestOptions struct {
	Headers map[string]string
	Params  map[string]string
}

// UploadOptions carries optional settings for multipart uploads.
type UploadOptions struct {
	// FieldName is the multipart form field for the file ("file" by default).
	FieldName      string
	AdditionalData map[string]string
	Headers        map[string]string
}

// Adapter is the transport surface the repositories depend on. out, when
// non-nil, receives the JSON-decoded success payload.
type Adapter interface {
	Get(ctx context.Context, url string, opts *RequestOptions, out any) error
	Post(ctx context.Context, url string, body any, opts *RequestOptions, out any) error
	Put(ctx context.Context, url string, body any, opts *RequestOptions, out any) error
	Delete(ctx context.Context, url string, opts *RequestOptions, out any) error
	Upload(ctx context.Context, url string, file *models.LiveFile, opts *UploadOptions, out any) error
}

// Error is the user-facing failure of an API call.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
