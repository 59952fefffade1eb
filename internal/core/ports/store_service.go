package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// StoreService defines use-case operations for stores.
type StoreService interface {
	Get(ctx context.Context, name string) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	Create(ctx context.Context, name string) (*domain.Store, error)
	// Delete is tolerant: removing a missing store is a no-op success.
	Delete(ctx context.Context, name string) error
}
