package store

import "context"

// Session storage keys, mirrored from what the web client persists.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
)

// SessionStorage persists a session's auth data across gateway
// restarts. It is written on sign-in, cleared on logout and read
// exactly once when the session's AuthStore is constructed.
type SessionStorage interface {
	// Token returns the stored bearer token, or "" when absent.
	Token(ctx context.Context, sessionID string) (string, error)
	// UserData returns the serialized user record, or "" when absent.
	UserData(ctx context.Context, sessionID string) (string, error)
	// SaveAuth stores both values for the session.
	SaveAuth(ctx context.Context, sessionID, token, userData string) error
	// ClearAuth removes both values for the session.
	ClearAuth(ctx context.Context, sessionID string) error
}
