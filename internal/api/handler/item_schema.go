package handler

import "github.com/mercadito/catalog-api/internal/core/domain"

// itemRequest carries the mutable item fields; the item name travels in
// the URL path, matching the store/item resource layout. Price is a
// pointer so a zero price still counts as present.
type itemRequest struct {
	Price   *float64 `json:"price"    validate:"required"`
	StoreID int64    `json:"store_id" validate:"required,gt=0"`
}

type listItemsResponse struct {
	Items []*domain.Item `json:"items"`
}
