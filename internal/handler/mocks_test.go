package handler

import (
	"context"

	"retailvision/internal/filter"
	"retailvision/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRetailerService is a mock implementation of RetailerService.
type MockRetailerService struct {
	mock.Mock
}

func (m *MockRetailerService) List(ctx context.Context, q filter.Query) ([]model.Retailer, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Retailer), args.Error(1)
}

func (m *MockRetailerService) Countries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockStoreService is a mock implementation of StoreService.
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) List(ctx context.Context, q filter.Query) ([]model.Store, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Store), args.Error(1)
}

func (m *MockStoreService) GetByID(ctx context.Context, id string) (*model.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Store), args.Error(1)
}

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, q filter.Query) ([]model.Product, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Categories(ctx context.Context) ([]model.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryCount), args.Error(1)
}

// MockConfigurationService is a mock implementation of ConfigurationService.
type MockConfigurationService struct {
	mock.Mock
}

func (m *MockConfigurationService) flow(args mock.Arguments) (*model.CategoryFlow, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryFlow), args.Error(1)
}

func (m *MockConfigurationService) List(ctx context.Context, q filter.Query) ([]model.CategoryFlow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryFlow), args.Error(1)
}

func (m *MockConfigurationService) Get(ctx context.Context, flowID string) (*model.CategoryFlow, error) {
	return m.flow(m.Called(ctx, flowID))
}

func (m *MockConfigurationService) Stats(ctx context.Context) (*model.FlowStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FlowStats), args.Error(1)
}

func (m *MockConfigurationService) AddQuestion(ctx context.Context, flowID string, draft model.QuestionDraft) (*model.CategoryFlow, error) {
	return m.flow(m.Called(ctx, flowID, draft))
}

func (m *MockConfigurationService) UpdateQuestion(ctx context.Context, flowID, questionID string, patch model.QuestionPatch) (*model.CategoryFlow, error) {
	return m.flow(m.Called(ctx, flowID, questionID, patch))
}

func (m *MockConfigurationService) DeleteQuestion(ctx context.Context, flowID, questionID string) (*model.CategoryFlow, error) {
	return m.flow(m.Called(ctx, flowID, questionID))
}

func (m *MockConfigurationService) SaveFlow(ctx context.Context, flowID string) (*model.CategoryFlow, error) {
	return m.flow(m.Called(ctx, flowID))
}

// MockWizardService is a mock implementation of WizardService.
type MockWizardService struct {
	mock.Mock
}

func (m *MockWizardService) session(args mock.Arguments) (*model.WizardSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WizardSession), args.Error(1)
}

func (m *MockWizardService) Catalog() model.WizardCatalog {
	return m.Called().Get(0).(model.WizardCatalog)
}

func (m *MockWizardService) Start(ctx context.Context) (*model.WizardSession, error) {
	return m.session(m.Called(ctx))
}

func (m *MockWizardService) Get(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockWizardService) Advance(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockWizardService) Retreat(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockWizardService) Finish(ctx context.Context, id uuid.UUID) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockWizardService) SetDetails(ctx context.Context, id uuid.UUID, req model.WizardDetailsRequest) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id, req))
}

func (m *MockWizardService) SelectConnector(ctx context.Context, id uuid.UUID, connectorID string) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id, connectorID))
}

func (m *MockWizardService) SetAPIKey(ctx context.Context, id uuid.UUID, key string) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id, key))
}

func (m *MockWizardService) MapField(ctx context.Context, id uuid.UUID, field, column string) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id, field, column))
}

func (m *MockWizardService) ToggleStore(ctx context.Context, id uuid.UUID, store string, selected bool) (*model.WizardSession, error) {
	return m.session(m.Called(ctx, id, store, selected))
}

func (m *MockWizardService) Close(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockPlanogramService is a mock implementation of PlanogramService.
type MockPlanogramService struct {
	mock.Mock
}

func (m *MockPlanogramService) board(args mock.Arguments) (*model.BoardView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoardView), args.Error(1)
}

func (m *MockPlanogramService) Zones() []model.Zone {
	return m.Called().Get(0).([]model.Zone)
}

func (m *MockPlanogramService) Palette(ctx context.Context, search string) ([]model.Product, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockPlanogramService) Board(ctx context.Context, storeID string) (*model.BoardView, error) {
	return m.board(m.Called(ctx, storeID))
}

func (m *MockPlanogramService) Assign(ctx context.Context, storeID, zoneID string, productID int) (*model.BoardView, error) {
	return m.board(m.Called(ctx, storeID, zoneID, productID))
}

func (m *MockPlanogramService) Unassign(ctx context.Context, storeID string, productID int) (*model.BoardView, error) {
	return m.board(m.Called(ctx, storeID, productID))
}

func (m *MockPlanogramService) ZoneOf(ctx context.Context, storeID string, productID int) (*model.ZoneLookup, error) {
	args := m.Called(ctx, storeID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ZoneLookup), args.Error(1)
}

func (m *MockPlanogramService) SaveLayout(ctx context.Context, storeID string) (*model.Layout, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Layout), args.Error(1)
}

func (m *MockPlanogramService) LoadLayout(ctx context.Context, storeID string) (*model.BoardView, error) {
	return m.board(m.Called(ctx, storeID))
}

// MockDashboardService is a mock implementation of DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Overview(ctx context.Context) (*model.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}
