package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// CookieName is the cookie that carries the opaque session token.
const CookieName = "pa_session"

// ErrNotFound is returned when a token has no live session behind it,
// either because it never existed or because it expired.
var ErrNotFound = errors.New("session not found")

// Store keeps server-side sessions keyed by an opaque token. The token is the
// only thing the client ever sees; the user id it resolves to lives on the
// server and disappears on logout or expiry.
type Store interface {
	// Create opens a session for the user and returns its token.
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Get resolves a token to the user id it was created for.
	Get(ctx context.Context, token string) (uuid.UUID, error)
	// Destroy invalidates a token. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.NewString()
}
