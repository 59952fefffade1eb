package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// ItemRepository persists items through Bun.
type ItemRepository struct {
	db *bun.DB
}

func NewItemRepository(db *bun.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	item := new(domain.Item)
	err := r.db.NewSelect().Model(item).Where("itm.name = ?", name).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item by name: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	var items []*domain.Item
	err := r.db.NewSelect().Model(&items).Order("itm.name ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []*domain.Item{}
	}
	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	res, err := r.db.NewInsert().Model(item).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrItemExists
		}
		return nil, fmt.Errorf("insert item: %w", err)
	}
	if item.ID == 0 {
		if id, err := res.LastInsertId(); err == nil {
			item.ID = id
		}
	}
	return item, nil
}

func (r *ItemRepository) UpdatePrice(ctx context.Context, item *domain.Item) error {
	_, err := r.db.NewUpdate().
		Model(item).
		Column("price").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update item price: %w", err)
	}
	return nil
}

// DeleteByName removes an item, returning the number of rows removed
// (0 when the name was unknown).
func (r *ItemRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*domain.Item)(nil)).
		Where("name = ?", name).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
