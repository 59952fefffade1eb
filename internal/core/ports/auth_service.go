package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// AuthService implements account registration and password login.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the password and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginThrottle limits repeated failed logins per username. Implementations
// must fail open: an unavailable backend should not lock out logins.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	NoteFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
