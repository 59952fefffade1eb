package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// StoreRepository persists stores through Bun. Reads eagerly load items so
// the JSON representation always carries the full collection.
type StoreRepository struct {
	db *bun.DB
}

func NewStoreRepository(db *bun.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) FindByName(ctx context.Context, name string) (*domain.Store, error) {
	store := new(domain.Store)
	err := r.db.NewSelect().Model(store).Relation("Items").Where("st.name = ?", name).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store by name: %w", err)
	}
	if store.Items == nil {
		store.Items = []*domain.Item{}
	}
	return store, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id int64) (*domain.Store, error) {
	store := new(domain.Store)
	err := r.db.NewSelect().Model(store).Where("st.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store by id: %w", err)
	}
	return store, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]*domain.Store, error) {
	var stores []*domain.Store
	err := r.db.NewSelect().Model(&stores).Relation("Items").Order("st.name ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	for _, store := range stores {
		if store.Items == nil {
			store.Items = []*domain.Item{}
		}
	}
	return stores, nil
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	res, err := r.db.NewInsert().Model(store).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrStoreExists
		}
		return nil, fmt.Errorf("insert store: %w", err)
	}
	if store.ID == 0 {
		if id, err := res.LastInsertId(); err == nil {
			store.ID = id
		}
	}
	if store.Items == nil {
		store.Items = []*domain.Item{}
	}
	return store, nil
}

// DeleteByName removes a store and its items in one transaction, returning
// the number of store rows removed (0 when the name was unknown). The items
// come back if the store delete fails.
func (r *StoreRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	var removed int64
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		store := new(domain.Store)
		if err := tx.NewSelect().Model(store).Where("st.name = ?", name).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("find store by name: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*domain.Item)(nil)).
			Where("store_id = ?", store.ID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete store items: %w", err)
		}

		res, err := tx.NewDelete().
			Model((*domain.Store)(nil)).
			Where("name = ?", name).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete store: %w", err)
		}
		removed, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
