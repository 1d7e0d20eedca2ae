package service

import (
	"context"
	"fmt"

	"retailvision/internal/filter"
	"retailvision/internal/model"
	"retailvision/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	catalog repository.CatalogRepository
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(catalog repository.CatalogRepository, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: catalog,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// List filters products by name or SKU and by category.
func (s *productService) List(ctx context.Context, q filter.Query) ([]model.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	out := filter.Apply(products, q,
		func(p model.Product) []string { return []string{p.Name, p.SKU} },
		func(p model.Product) string { return p.Category },
	)

	s.logger.Debug().
		Str("search", q.Search).
		Str("category", q.Category).
		Int("count", len(out)).
		Msg("filtered products")

	return out, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Categories counts products per category.
func (s *productService) Categories(ctx context.Context) ([]model.CategoryCount, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	names := filter.Distinct(products, func(p model.Product) string { return p.Category })
	counts := make(map[string]int, len(names))
	for _, p := range products {
		counts[p.Category]++
	}

	out := make([]model.CategoryCount, len(names))
	for i, name := range names {
		out[i] = model.CategoryCount{Name: name, Count: counts[name]}
	}
	return out, nil
}
