package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// TokenService issues signed bearer tokens and resolves them back to live
// user records.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Resolve validates signature and expiry, then re-fetches the subject
	// from the credential store so a deleted account invalidates every
	// outstanding token. Failures are one of the domain token errors.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
