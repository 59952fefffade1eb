package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// UserRepository is the credential store: it persists account records and
// resolves them by username (login) or id (token resolution).
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create inserts a new user and returns it with the assigned id.
	// Returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
