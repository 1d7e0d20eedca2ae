package service

import (
	"context"
	"fmt"

	"retailvision/internal/filter"
	"retailvision/internal/model"
	"retailvision/internal/repository"

	"github.com/rs/zerolog"
)

// retailerService implements RetailerService.
type retailerService struct {
	catalog repository.CatalogRepository
	logger  zerolog.Logger
}

// NewRetailerService creates a new retailer service.
func NewRetailerService(catalog repository.CatalogRepository, logger zerolog.Logger) RetailerService {
	return &retailerService{
		catalog: catalog,
		logger:  logger.With().Str("service", "retailer").Logger(),
	}
}

func (s *retailerService) List(ctx context.Context, q filter.Query) ([]model.Retailer, error) {
	retailers, err := s.catalog.ListRetailers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list retailers")
		return nil, fmt.Errorf("failed to list retailers: %w", err)
	}

	out := filter.Apply(retailers, q,
		func(r model.Retailer) []string { return []string{r.Name} },
		func(r model.Retailer) string { return r.Country },
	)

	s.logger.Debug().
		Str("search", q.Search).
		Str("country", q.Category).
		Int("count", len(out)).
		Msg("filtered retailers")

	return out, nil
}

func (s *retailerService) Countries(ctx context.Context) ([]string, error) {
	retailers, err := s.catalog.ListRetailers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list retailers")
		return nil, fmt.Errorf("failed to list retailers: %w", err)
	}

	return filter.Distinct(retailers, func(r model.Retailer) string { return r.Country }), nil
}
