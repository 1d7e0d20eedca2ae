package service

import (
	"context"
	"errors"
	"testing"

	"retailvision/internal/filter"
	"retailvision/internal/model"
	"retailvision/internal/seed"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetailerService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	retailers := seed.Default().Retailers

	tests := []struct {
		name     string
		query    filter.Query
		expected []string
	}{
		{
			name:     "All retailers",
			query:    filter.Query{Category: filter.All},
			expected: []string{"TechMart", "FashionPlus", "SportZone", "HomeDecor Co", "ElectroHub"},
		},
		{
			name:     "Case-insensitive search",
			query:    filter.Query{Search: "  tech "},
			expected: []string{"TechMart"},
		},
		{
			name:     "Country filter",
			query:    filter.Query{Category: "Canada"},
			expected: []string{"FashionPlus"},
		},
		{
			name:     "Search and country must both match",
			query:    filter.Query{Search: "tech", Category: "Canada"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCatalogRepository)
			mockRepo.On("ListRetailers", ctx).Return(retailers, nil)

			svc := NewRetailerService(mockRepo, logger)
			result, err := svc.List(ctx, tt.query)

			require.NoError(t, err)
			names := make([]string, len(result))
			for i, r := range result {
				names[i] = r.Name
			}
			assert.Equal(t, tt.expected, names)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRetailerService_Countries(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListRetailers", ctx).Return([]model.Retailer{
		{Name: "A", Country: "Canada"},
		{Name: "B", Country: "Germany"},
		{Name: "C", Country: "Canada"},
	}, nil)

	svc := NewRetailerService(mockRepo, zerolog.Nop())
	countries, err := svc.Countries(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Canada", "Germany"}, countries)
}

func TestRetailerService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListRetailers", ctx).Return(nil, errors.New("boom"))

	svc := NewRetailerService(mockRepo, zerolog.Nop())
	_, err := svc.List(ctx, filter.Query{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list retailers")
}

func TestStoreService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListStores", ctx).Return(seed.Default().Stores, nil)

	svc := NewStoreService(mockRepo, zerolog.Nop())

	byLocation, err := svc.List(ctx, filter.Query{Search: "seattle"})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "ST005", byLocation[0].ID)

	setup, err := svc.List(ctx, filter.Query{Category: model.StoreSetup})
	require.NoError(t, err)
	require.Len(t, setup, 1)
	assert.Equal(t, "ST004", setup[0].ID)
}

func TestStoreService_GetByID(t *testing.T) {
	ctx := context.Background()
	store := &model.Store{ID: "ST001", Name: "TechMart Downtown"}

	tests := []struct {
		name        string
		id          string
		setupMock   func(*MockCatalogRepository)
		expectedErr error
	}{
		{
			name: "Found",
			id:   "ST001",
			setupMock: func(m *MockCatalogRepository) {
				m.On("GetStore", ctx, "ST001").Return(store, nil)
			},
		},
		{
			name: "Not found",
			id:   "ST999",
			setupMock: func(m *MockCatalogRepository) {
				m.On("GetStore", ctx, "ST999").Return(nil, nil)
			},
			expectedErr: model.ErrStoreNotFound,
		},
		{
			name:        "Empty ID",
			id:          "",
			setupMock:   func(*MockCatalogRepository) {},
			expectedErr: model.ErrStoreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCatalogRepository)
			tt.setupMock(mockRepo)

			svc := NewStoreService(mockRepo, zerolog.Nop())
			result, err := svc.GetByID(ctx, tt.id)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, store, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListProducts", ctx).Return(seed.Default().Products, nil)

	svc := NewProductService(mockRepo, zerolog.Nop())

	bySKU, err := svc.List(ctx, filter.Query{Search: "lev501"})
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, 7, bySKU[0].ID)

	footwear, err := svc.List(ctx, filter.Query{Category: "Footwear"})
	require.NoError(t, err)
	assert.Len(t, footwear, 2)

	none, err := svc.List(ctx, filter.Query{Category: "footwear"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestProductService_GetByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("GetProduct", ctx, 1).Return(&model.Product{ID: 1, Name: "iPhone 15 Pro"}, nil)
	mockRepo.On("GetProduct", ctx, 42).Return(nil, nil)
	mockRepo.On("GetProduct", ctx, 7).Return(nil, errors.New("boom"))

	svc := NewProductService(mockRepo, zerolog.Nop())

	p, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", p.Name)

	_, err = svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	_, err = svc.GetByID(ctx, 7)
	require.Error(t, err)
	assert.False(t, model.IsNotFound(err))
}

func TestProductService_Categories(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListProducts", ctx).Return(seed.Default().Products, nil)

	svc := NewProductService(mockRepo, zerolog.Nop())
	categories, err := svc.Categories(ctx)

	require.NoError(t, err)
	assert.Equal(t, []model.CategoryCount{
		{Name: "Electronics", Count: 4},
		{Name: "Footwear", Count: 2},
		{Name: "Clothing", Count: 2},
	}, categories)
}

func TestDashboardService_Overview(t *testing.T) {
	ctx := context.Background()
	data := seed.Default()

	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListRetailers", ctx).Return(data.Retailers, nil)
	mockRepo.On("ListStores", ctx).Return(data.Stores, nil)
	mockRepo.On("ListProducts", ctx).Return(data.Products, nil)
	mockRepo.On("ListImpressions", ctx).Return(data.Impressions, nil)
	mockRepo.On("ListCategoryTotals", ctx).Return(data.CategoryTotals, nil)
	mockRepo.On("ListActivity", ctx).Return(data.Activity, nil)

	svc := NewDashboardService(mockRepo, zerolog.Nop())
	d, err := svc.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, d.TotalRetailers)
	assert.Equal(t, 5, d.TotalStores)
	assert.Equal(t, 8, d.TotalProducts)
	assert.Equal(t, 2847+1456+987+756+3241, d.NetworkProducts)
	assert.Equal(t, "ElectroHub", d.TopRetailer)
	assert.Equal(t, data.Impressions, d.Impressions)
	assert.Equal(t, data.Activity, d.RecentActivity)
	mockRepo.AssertExpectations(t)
}

func TestDashboardService_Overview_Error(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("ListRetailers", ctx).Return(nil, errors.New("boom"))

	svc := NewDashboardService(mockRepo, zerolog.Nop())
	d, err := svc.Overview(ctx)

	require.Error(t, err)
	assert.Nil(t, d)
	assert.Contains(t, err.Error(), "failed to list retailers")
}
