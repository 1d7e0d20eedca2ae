package repository

import (
	"context"

	"retailvision/internal/model"
	"retailvision/internal/seed"

	"github.com/rs/zerolog"
)

// catalogRepository implements CatalogRepository over a seed dataset. The
// dataset is never modified after construction.
type catalogRepository struct {
	data   *seed.Dataset
	logger zerolog.Logger
}

// NewCatalogRepository creates a catalog repository serving data.
func NewCatalogRepository(data *seed.Dataset, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		data:   data,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

func (r *catalogRepository) ListRetailers(ctx context.Context) ([]model.Retailer, error) {
	return append([]model.Retailer{}, r.data.Retailers...), ctx.Err()
}

func (r *catalogRepository) ListStores(ctx context.Context) ([]model.Store, error) {
	return append([]model.Store{}, r.data.Stores...), ctx.Err()
}

// GetStore returns the store with the given ID, or nil if none exists.
func (r *catalogRepository) GetStore(ctx context.Context, id string) (*model.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, s := range r.data.Stores {
		if s.ID == id {
			store := s
			return &store, nil
		}
	}
	r.logger.Debug().Str("store_id", id).Msg("store not found")
	return nil, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	return append([]model.Product{}, r.data.Products...), ctx.Err()
}

// GetProduct returns the product with the given ID, or nil if none exists.
func (r *catalogRepository) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range r.data.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	r.logger.Debug().Int("product_id", id).Msg("product not found")
	return nil, nil
}

func (r *catalogRepository) ListImpressions(ctx context.Context) ([]model.MonthlyMetric, error) {
	return append([]model.MonthlyMetric{}, r.data.Impressions...), ctx.Err()
}

func (r *catalogRepository) ListCategoryTotals(ctx context.Context) ([]model.CategoryMetric, error) {
	return append([]model.CategoryMetric{}, r.data.CategoryTotals...), ctx.Err()
}

func (r *catalogRepository) ListActivity(ctx context.Context) ([]model.ActivityEntry, error) {
	return append([]model.ActivityEntry{}, r.data.Activity...), ctx.Err()
}
