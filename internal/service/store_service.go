package service

import (
	"context"
	"fmt"

	"retailvision/internal/filter"
	"retailvision/internal/model"
	"retailvision/internal/repository"

	"github.com/rs/zerolog"
)

// storeService implements StoreService.
type storeService struct {
	catalog repository.CatalogRepository
	logger  zerolog.Logger
}

// NewStoreService creates a new store service.
func NewStoreService(catalog repository.CatalogRepository, logger zerolog.Logger) StoreService {
	return &storeService{
		catalog: catalog,
		logger:  logger.With().Str("service", "store").Logger(),
	}
}

func (s *storeService) List(ctx context.Context, q filter.Query) ([]model.Store, error) {
	stores, err := s.catalog.ListStores(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list stores")
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	return filter.Apply(stores, q,
		func(st model.Store) []string { return []string{st.Name, st.Location} },
		func(st model.Store) string { return st.Status },
	), nil
}

func (s *storeService) GetByID(ctx context.Context, id string) (*model.Store, error) {
	if id == "" {
		return nil, model.ErrStoreNotFound
	}

	store, err := s.catalog.GetStore(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("store_id", id).Msg("failed to get store")
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	if store == nil {
		return nil, model.ErrStoreNotFound
	}

	return store, nil
}
