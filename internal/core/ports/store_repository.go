package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	// FindByName retrieves a store with its items eagerly loaded.
	FindByName(ctx context.Context, name string) (*domain.Store, error)
	FindByID(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	// DeleteByName removes a store and reports how many rows were affected.
	DeleteByName(ctx context.Context, name string) (int64, error)
}
