package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// StoreService implements the store use cases on top of StoreRepository.
type StoreService struct {
	repo   ports.StoreRepository
	logger zerolog.Logger
}

func NewStoreService(repo ports.StoreRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{repo: repo, logger: logger}
}

func (s *StoreService) Get(ctx context.Context, name string) (*domain.Store, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *StoreService) List(ctx context.Context) ([]*domain.Store, error) {
	return s.repo.List(ctx)
}

func (s *StoreService) Create(ctx context.Context, name string) (*domain.Store, error) {
	created, err := s.repo.Create(ctx, &domain.Store{Name: name})
	if err != nil {
		if !errors.Is(err, domain.ErrStoreExists) {
			s.logger.Error().Err(err).Str("store", name).Msg("failed to create store")
		}
		return nil, err
	}

	s.logger.Info().Str("store", name).Int64("store_id", created.ID).Msg("store created")
	return created, nil
}

// Delete removes a store by name. Deleting a store that does not exist is
// treated as success.
func (s *StoreService) Delete(ctx context.Context, name string) error {
	n, err := s.repo.DeleteByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("store", name).Msg("failed to delete store")
		return err
	}
	if n > 0 {
		s.logger.Info().Str("store", name).Msg("store deleted")
	}
	return nil
}
