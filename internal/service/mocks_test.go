package service

import (
	"context"

	"retailvision/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListRetailers(ctx context.Context) ([]model.Retailer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Retailer), args.Error(1)
}

func (m *MockCatalogRepository) ListStores(ctx context.Context) ([]model.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Store), args.Error(1)
}

func (m *MockCatalogRepository) GetStore(ctx context.Context, id string) (*model.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Store), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListImpressions(ctx context.Context) ([]model.MonthlyMetric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthlyMetric), args.Error(1)
}

func (m *MockCatalogRepository) ListCategoryTotals(ctx context.Context) ([]model.CategoryMetric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryMetric), args.Error(1)
}

func (m *MockCatalogRepository) ListActivity(ctx context.Context) ([]model.ActivityEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}

// MockLayoutRepository is a mock implementation of LayoutRepository.
type MockLayoutRepository struct {
	mock.Mock
}

func (m *MockLayoutRepository) Save(ctx context.Context, storeID string, items []model.LayoutItem) (*model.Layout, error) {
	args := m.Called(ctx, storeID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Layout), args.Error(1)
}

func (m *MockLayoutRepository) Latest(ctx context.Context, storeID string) (*model.Layout, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Layout), args.Error(1)
}
