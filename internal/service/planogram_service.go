package service

import (
	"context"
	"errors"
	"fmt"

	"retailvision/internal/filter"
	"retailvision/internal/model"
	"retailvision/internal/planogram"
	"retailvision/internal/repository"

	"github.com/rs/zerolog"
)

// planogramService implements PlanogramService.
type planogramService struct {
	catalog repository.CatalogRepository
	boards  repository.BoardRepository
	layouts repository.LayoutRepository
	logger  zerolog.Logger
}

// NewPlanogramService creates a new planogram service.
func NewPlanogramService(
	catalog repository.CatalogRepository,
	boards repository.BoardRepository,
	layouts repository.LayoutRepository,
	logger zerolog.Logger,
) PlanogramService {
	return &planogramService{
		catalog: catalog,
		boards:  boards,
		layouts: layouts,
		logger:  logger.With().Str("service", "planogram").Logger(),
	}
}

func (s *planogramService) Zones() []model.Zone {
	return planogram.Zones()
}

// Palette filters the draggable products by name or category.
func (s *planogramService) Palette(ctx context.Context, search string) ([]model.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return filter.Apply(products, filter.Query{Search: search},
		func(p model.Product) []string { return []string{p.Name, p.Category} },
		nil,
	), nil
}

func (s *planogramService) Board(ctx context.Context, storeID string) (*model.BoardView, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	board, err := s.boards.Get(ctx, storeID)
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to get board")
	}
	return toBoardView(storeID, board), nil
}

// Assign places the product into the zone. The zone's previous occupant is
// dropped and the product keeps any other zones it already holds.
func (s *planogramService) Assign(ctx context.Context, storeID, zoneID string, productID int) (*model.BoardView, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	if !planogram.HasZone(zoneID) {
		return nil, model.ErrZoneNotFound
	}
	product, err := s.requireProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	board, err := s.boards.Update(ctx, storeID, func(b planogram.Board) (planogram.Board, error) {
		return b.Assign(zoneID, *product), nil
	})
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to assign product")
	}

	s.logger.Info().
		Str("store_id", storeID).
		Str("zone_id", zoneID).
		Int("product_id", productID).
		Msg("product assigned")

	return toBoardView(storeID, board), nil
}

// Unassign clears every zone holding the product. Unplaced products are a no-op.
func (s *planogramService) Unassign(ctx context.Context, storeID string, productID int) (*model.BoardView, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	board, err := s.boards.Update(ctx, storeID, func(b planogram.Board) (planogram.Board, error) {
		return b.Unassign(productID), nil
	})
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to unassign product")
	}

	s.logger.Info().
		Str("store_id", storeID).
		Int("product_id", productID).
		Msg("product unassigned")

	return toBoardView(storeID, board), nil
}

func (s *planogramService) ZoneOf(ctx context.Context, storeID string, productID int) (*model.ZoneLookup, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	board, err := s.boards.Get(ctx, storeID)
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to get board")
	}

	zoneID, placed := board.ZoneOf(productID)
	return &model.ZoneLookup{ProductID: productID, ZoneID: zoneID, Placed: placed}, nil
}

// SaveLayout stores the live board as the store's next layout version.
func (s *planogramService) SaveLayout(ctx context.Context, storeID string) (*model.Layout, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	board, err := s.boards.Get(ctx, storeID)
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to get board")
	}

	layout, err := s.layouts.Save(ctx, storeID, board.Items())
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to save layout")
	}

	s.logger.Info().
		Str("store_id", storeID).
		Int("version", layout.Version).
		Int("items", len(layout.Items)).
		Msg("layout saved")

	return layout, nil
}

// LoadLayout replaces the live board with the latest saved layout. Items
// whose product no longer exists in the catalog are skipped.
func (s *planogramService) LoadLayout(ctx context.Context, storeID string) (*model.BoardView, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	layout, err := s.layouts.Latest(ctx, storeID)
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to load layout")
	}
	if layout == nil {
		return nil, model.ErrLayoutNotFound
	}

	placements := make([]model.Placement, 0, len(layout.Items))
	for _, item := range layout.Items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, s.wrap(err, storeID, "failed to resolve layout product")
		}
		if product == nil {
			s.logger.Warn().
				Str("store_id", storeID).
				Int("product_id", item.ProductID).
				Msg("skipping layout item for unknown product")
			continue
		}
		placements = append(placements, model.Placement{ZoneID: item.ZoneID, Product: *product})
	}

	board, err := s.boards.Update(ctx, storeID, func(planogram.Board) (planogram.Board, error) {
		return planogram.FromPlacements(placements), nil
	})
	if err != nil {
		return nil, s.wrap(err, storeID, "failed to restore board")
	}

	s.logger.Info().
		Str("store_id", storeID).
		Int("version", layout.Version).
		Msg("layout restored")

	return toBoardView(storeID, board), nil
}

func (s *planogramService) requireStore(ctx context.Context, storeID string) error {
	store, err := s.catalog.GetStore(ctx, storeID)
	if err != nil {
		return s.wrap(err, storeID, "failed to get store")
	}
	if store == nil {
		return model.ErrStoreNotFound
	}
	return nil
}

func (s *planogramService) requireProduct(ctx context.Context, productID int) (*model.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

func (s *planogramService) wrap(err error, storeID, msg string) error {
	var de *model.DomainError
	if errors.As(err, &de) {
		return err
	}
	s.logger.Error().Err(err).Str("store_id", storeID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func toBoardView(storeID string, board planogram.Board) *model.BoardView {
	return &model.BoardView{
		StoreID:    storeID,
		Zones:      planogram.Zones(),
		Placements: board.Placements(),
	}
}
