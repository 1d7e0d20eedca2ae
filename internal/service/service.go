package service

import (
	"context"

	"retailvision/internal/filter"
	"retailvision/internal/model"

	"github.com/google/uuid"
)

// RetailerService defines operations for the retailers screen.
type RetailerService interface {
	// List returns retailers whose name matches q.Search and whose country
	// equals q.Category.
	List(ctx context.Context, q filter.Query) ([]model.Retailer, error)

	// Countries returns the distinct retailer countries in first-seen order.
	Countries(ctx context.Context) ([]string, error)
}

// StoreService defines operations for the stores screen.
type StoreService interface {
	// List returns stores whose name or location matches q.Search and whose
	// status equals q.Category.
	List(ctx context.Context, q filter.Query) ([]model.Store, error)

	// GetByID retrieves a single store.
	GetByID(ctx context.Context, id string) (*model.Store, error)
}

// ProductService defines operations for the products screen.
type ProductService interface {
	// List returns products whose name or SKU matches q.Search and whose
	// category equals q.Category.
	List(ctx context.Context, q filter.Query) ([]model.Product, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Categories returns product counts per category in first-seen order.
	Categories(ctx context.Context) ([]model.CategoryCount, error)
}

// ConfigurationService defines operations for the category flow editor.
type ConfigurationService interface {
	// List returns flows whose name or description matches q.Search and whose
	// status equals q.Category.
	List(ctx context.Context, q filter.Query) ([]model.CategoryFlow, error)

	// Get retrieves a single flow.
	Get(ctx context.Context, flowID string) (*model.CategoryFlow, error)

	// Stats summarises all flows.
	Stats(ctx context.Context) (*model.FlowStats, error)

	// AddQuestion appends a question to a flow.
	AddQuestion(ctx context.Context, flowID string, draft model.QuestionDraft) (*model.CategoryFlow, error)

	// UpdateQuestion merges patch into a question.
	UpdateQuestion(ctx context.Context, flowID, questionID string, patch model.QuestionPatch) (*model.CategoryFlow, error)

	// DeleteQuestion removes a question from a flow.
	DeleteQuestion(ctx context.Context, flowID, questionID string) (*model.CategoryFlow, error)

	// SaveFlow records a new version of the flow.
	SaveFlow(ctx context.Context, flowID string) (*model.CategoryFlow, error)
}

// WizardService defines operations for add-retailer wizard sessions.
type WizardService interface {
	Catalog() model.WizardCatalog
	Start(ctx context.Context) (*model.WizardSession, error)
	Get(ctx context.Context, id uuid.UUID) (*model.WizardSession, error)
	Advance(ctx context.Context, id uuid.UUID) (*model.WizardSession, error)
	Retreat(ctx context.Context, id uuid.UUID) (*model.WizardSession, error)
	Finish(ctx context.Context, id uuid.UUID) (*model.WizardSession, error)
	SetDetails(ctx context.Context, id uuid.UUID, req model.WizardDetailsRequest) (*model.WizardSession, error)
	SelectConnector(ctx context.Context, id uuid.UUID, connectorID string) (*model.WizardSession, error)
	SetAPIKey(ctx context.Context, id uuid.UUID, key string) (*model.WizardSession, error)
	MapField(ctx context.Context, id uuid.UUID, field, column string) (*model.WizardSession, error)
	ToggleStore(ctx context.Context, id uuid.UUID, store string, selected bool) (*model.WizardSession, error)
	Close(ctx context.Context, id uuid.UUID) error
}

// PlanogramService defines operations for the planogram editor.
type PlanogramService interface {
	// Zones returns the fixed floor zones.
	Zones() []model.Zone

	// Palette returns products whose name or category matches search.
	Palette(ctx context.Context, search string) ([]model.Product, error)

	// Board returns the live board of a store.
	Board(ctx context.Context, storeID string) (*model.BoardView, error)

	// Assign places a product into a zone, replacing the previous occupant.
	Assign(ctx context.Context, storeID, zoneID string, productID int) (*model.BoardView, error)

	// Unassign removes a product from every zone of the store.
	Unassign(ctx context.Context, storeID string, productID int) (*model.BoardView, error)

	// ZoneOf reports where a product is placed.
	ZoneOf(ctx context.Context, storeID string, productID int) (*model.ZoneLookup, error)

	// SaveLayout persists the live board as a new layout version.
	SaveLayout(ctx context.Context, storeID string) (*model.Layout, error)

	// LoadLayout replaces the live board with the latest saved layout.
	LoadLayout(ctx context.Context, storeID string) (*model.BoardView, error)
}

// DashboardService defines the overview screen.
type DashboardService interface {
	Overview(ctx context.Context) (*model.Dashboard, error)
}
