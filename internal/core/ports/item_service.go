package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// ItemInput carries the mutable item fields; the name travels in the URL.
type ItemInput struct {
	Name    string
	Price   float64
	StoreID int64
}

// ItemService defines use-case operations for items.
type ItemService interface {
	Get(ctx context.Context, name string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Create(ctx context.Context, input ItemInput) (*domain.Item, error)
	// Upsert updates the price of an existing item or creates it.
	Upsert(ctx context.Context, input ItemInput) (*domain.Item, error)
	// Delete is tolerant: removing a missing item is a no-op success.
	Delete(ctx context.Context, name string) error
}
