package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// ItemRepository defines persistence operations for items.
type ItemRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	// UpdatePrice changes the price of an existing item in place.
	UpdatePrice(ctx context.Context, item *domain.Item) error
	// DeleteByName removes an item and reports how many rows were affected.
	DeleteByName(ctx context.Context, name string) (int64, error)
}
