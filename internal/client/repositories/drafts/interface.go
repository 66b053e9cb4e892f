// Package drafts persists small client-local records in the onboarding
// database: the registration draft blob and the session token, each under a
// well-known key.
package drafts

import "context"

// Well-known record keys.
const (
	// RegistrationDraftKey holds the JSON-serialized registration draft.
	RegistrationDraftKey = "registration_draft"
	// AuthTokenKey holds the session token issued at login.
	AuthTokenKey = "auth_token"
)

// Repository is a key/value store over the client-local database.
// Get returns (nil, nil) when the key is absent; Delete and Clear are
// idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
