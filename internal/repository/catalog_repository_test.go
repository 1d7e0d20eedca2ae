package repository

import (
	"context"
	"testing"

	"retailvision/internal/seed"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(seed.Default(), zerolog.Nop())

	retailers, err := repo.ListRetailers(ctx)
	require.NoError(t, err)
	assert.Len(t, retailers, 5)
	assert.Equal(t, "TechMart", retailers[0].Name)

	stores, err := repo.ListStores(ctx)
	require.NoError(t, err)
	assert.Len(t, stores, 5)

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)

	impressions, err := repo.ListImpressions(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, impressions)

	totals, err := repo.ListCategoryTotals(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, totals)

	activity, err := repo.ListActivity(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, activity)
}

func TestCatalogRepository_ListsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(seed.Default(), zerolog.Nop())

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	products[0].Name = "changed"

	again, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", again[0].Name)
}

func TestCatalogRepository_GetStore(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(seed.Default(), zerolog.Nop())

	store, err := repo.GetStore(ctx, "ST003")
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "SportZone Express", store.Name)

	missing, err := repo.GetStore(ctx, "ST404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogRepository_GetProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(seed.Default(), zerolog.Nop())

	product, err := repo.GetProduct(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "LEV501-32", product.SKU)

	missing, err := repo.GetProduct(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewCatalogRepository(seed.Default(), zerolog.Nop())

	_, err := repo.GetStore(ctx, "ST001")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.ListRetailers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
