package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// ItemService implements the item use cases. Creation checks the owning
// store first so a dangling store_id surfaces as a 404, not an FK error.
type ItemService struct {
	repo   ports.ItemRepository
	stores ports.StoreRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, stores ports.StoreRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, stores: stores, logger: logger}
}

func (s *ItemService) Get(ctx context.Context, name string) (*domain.Item, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *ItemService) List(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.List(ctx)
}

func (s *ItemService) Create(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	if _, err := s.stores.FindByID(ctx, input.StoreID); err != nil {
		return nil, err
	}

	item := &domain.Item{Name: input.Name, Price: input.Price, StoreID: input.StoreID}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if !errors.Is(err, domain.ErrItemExists) {
			s.logger.Error().Err(err).Str("item", input.Name).Msg("failed to create item")
		}
		return nil, err
	}

	s.logger.Info().Str("item", input.Name).Int64("store_id", input.StoreID).Msg("item created")
	return created, nil
}

// Upsert updates the price of an existing item, or creates the item when
// the name is unknown.
func (s *ItemService) Upsert(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	item, err := s.repo.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return s.Create(ctx, input)
		}
		return nil, err
	}

	item.Price = input.Price
	if err := s.repo.UpdatePrice(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("item", input.Name).Msg("failed to update item")
		return nil, err
	}

	s.logger.Info().Str("item", input.Name).Float64("price", input.Price).Msg("item updated")
	return item, nil
}

// Delete removes an item by name. Deleting a missing item is a no-op.
func (s *ItemService) Delete(ctx context.Context, name string) error {
	n, err := s.repo.DeleteByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("item", name).Msg("failed to delete item")
		return err
	}
	if n > 0 {
		s.logger.Info().Str("item", name).Msg("item deleted")
	}
	return nil
}
