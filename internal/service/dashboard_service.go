package service

import (
	"context"
	"fmt"

	"retailvision/internal/model"
	"retailvision/internal/repository"

	"github.com/rs/zerolog"
)

// dashboardService implements DashboardService.
type dashboardService struct {
	catalog repository.CatalogRepository
	logger  zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(catalog repository.CatalogRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		catalog: catalog,
		logger:  logger.With().Str("service", "dashboard").Logger(),
	}
}

// Overview computes the catalog totals and attaches the seeded chart series.
func (s *dashboardService) Overview(ctx context.Context) (*model.Dashboard, error) {
	retailers, err := s.catalog.ListRetailers(ctx)
	if err != nil {
		return nil, s.fail(err, "failed to list retailers")
	}
	stores, err := s.catalog.ListStores(ctx)
	if err != nil {
		return nil, s.fail(err, "failed to list stores")
	}
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, s.fail(err, "failed to list products")
	}
	impressions, err := s.catalog.ListImpressions(ctx)
	if err != nil {
		return nil, s.fail(err, "failed to list impressions")
	}
	categories, err := s.catalog.ListCategoryTotals(ctx)
	if err != nil {
		return nil, s.fail(err, "failed to list category totals")
	}
	activity, err := s.catalog.ListActivity(ctx)
	if err != nil {
		return nil, s.fail(err, "failed to list activity")
	}

	d := &model.Dashboard{
		TotalRetailers:   len(retailers),
		TotalStores:      len(stores),
		TotalProducts:    len(products),
		Impressions:      impressions,
		CategoryProducts: categories,
		RecentActivity:   activity,
	}

	// Ties keep the first retailer in seed order.
	best := -1
	for _, r := range retailers {
		d.NetworkProducts += r.Products
		if r.Products > best {
			best = r.Products
			d.TopRetailer = r.Name
		}
	}

	return d, nil
}

func (s *dashboardService) fail(err error, msg string) error {
	s.logger.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
