package repository

import (
	"context"

	"retailvision/internal/model"
	"retailvision/internal/planogram"
	"retailvision/internal/wizard"

	"github.com/google/uuid"
)

// CatalogRepository provides read access to the seeded catalog.
type CatalogRepository interface {
	// ListRetailers returns all retailers in seed order.
	ListRetailers(ctx context.Context) ([]model.Retailer, error)

	// ListStores returns all stores in seed order.
	ListStores(ctx context.Context) ([]model.Store, error)

	// GetStore returns the store with the given ID, or nil if none exists.
	GetStore(ctx context.Context, id string) (*model.Store, error)

	// ListProducts returns all products in seed order.
	ListProducts(ctx context.Context) ([]model.Product, error)

	// GetProduct returns the product with the given ID, or nil if none exists.
	GetProduct(ctx context.Context, id int) (*model.Product, error)

	// ListImpressions returns the monthly impressions series.
	ListImpressions(ctx context.Context) ([]model.MonthlyMetric, error)

	// ListCategoryTotals returns network-wide product totals per category.
	ListCategoryTotals(ctx context.Context) ([]model.CategoryMetric, error)

	// ListActivity returns the recent activity feed.
	ListActivity(ctx context.Context) ([]model.ActivityEntry, error)
}

// FlowRepository stores the editable category flows.
type FlowRepository interface {
	// List returns copies of all flows in seed order.
	List(ctx context.Context) ([]model.CategoryFlow, error)

	// Get returns a copy of the flow, or nil if none exists.
	Get(ctx context.Context, id string) (*model.CategoryFlow, error)

	// Update applies fn to the stored flow atomically and returns the result.
	// Returns model.ErrFlowNotFound if the flow does not exist. If fn fails the
	// stored flow is left unchanged.
	Update(ctx context.Context, id string, fn func(*model.CategoryFlow) error) (*model.CategoryFlow, error)
}

// WizardRepository stores in-progress wizard sessions.
type WizardRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, id uuid.UUID, state wizard.State) error

	// Get returns the session state. Returns model.ErrSessionNotFound if absent.
	Get(ctx context.Context, id uuid.UUID) (wizard.State, error)

	// Update replaces the session state with fn's result atomically.
	Update(ctx context.Context, id uuid.UUID, fn func(wizard.State) (wizard.State, error)) (wizard.State, error)

	// Delete discards the session.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BoardRepository stores the live placement board of each store.
type BoardRepository interface {
	// Get returns the board of a store; stores never touched have an empty board.
	Get(ctx context.Context, storeID string) (planogram.Board, error)

	// Update replaces the store's board with fn's result atomically.
	Update(ctx context.Context, storeID string, fn func(planogram.Board) (planogram.Board, error)) (planogram.Board, error)
}

// LayoutRepository persists saved planogram layouts.
type LayoutRepository interface {
	// Save stores items as the next layout version of the store.
	Save(ctx context.Context, storeID string, items []model.LayoutItem) (*model.Layout, error)

	// Latest returns the highest saved version, or nil if the store has none.
	Latest(ctx context.Context, storeID string) (*model.Layout, error)
}
