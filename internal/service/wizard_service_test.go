package service

import (
	"context"
	"testing"

	"retailvision/internal/model"
	"retailvision/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWizardService() WizardService {
	return NewWizardService(repository.NewWizardRepository(zerolog.Nop()), zerolog.Nop())
}

func TestWizardService_Start(t *testing.T) {
	svc := newTestWizardService()

	session, err := svc.Start(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, 1, session.Step)
	assert.Equal(t, "Retailer Details", session.StepInfo.Title)
	assert.InDelta(t, 20.0, session.Progress, 0.001)
	assert.True(t, session.CanAdvance)
	assert.False(t, session.CanRetreat)
	assert.NotEmpty(t, session.Issues)
}

func TestWizardService_FullFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestWizardService()

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.ID

	_, err = svc.SetDetails(ctx, id, model.WizardDetailsRequest{
		RetailerName: "Acme",
		AdminEmail:   "admin@acme.test",
	})
	require.NoError(t, err)
	_, err = svc.SelectConnector(ctx, id, "sheets")
	require.NoError(t, err)
	_, err = svc.SetAPIKey(ctx, id, "secret")
	require.NoError(t, err)
	_, err = svc.MapField(ctx, id, "Price", "price")
	require.NoError(t, err)
	session, err = svc.ToggleStore(ctx, id, "TechMart Mall", true)
	require.NoError(t, err)
	assert.Empty(t, session.Issues)

	for range 4 {
		session, err = svc.Advance(ctx, id)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, session.Step)
	assert.False(t, session.CanAdvance)

	session, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, session.Step)

	session, err = svc.Finish(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Step)
	assert.Empty(t, session.Form.RetailerName)
	assert.Empty(t, session.Form.Mappings)
	assert.Empty(t, session.Form.SelectedStores)
}

func TestWizardService_RejectedInputsKeepState(t *testing.T) {
	ctx := context.Background()
	svc := newTestWizardService()

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.ID

	_, err = svc.SelectConnector(ctx, id, "ftp")
	assert.ErrorIs(t, err, model.ErrUnknownConnector)

	_, err = svc.MapField(ctx, id, "Colour", "colour")
	assert.ErrorIs(t, err, model.ErrUnknownField)

	_, err = svc.ToggleStore(ctx, id, "Nowhere", true)
	assert.ErrorIs(t, err, model.ErrUnknownStore)

	session, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, session.Form.SelectedConnector)
	assert.Empty(t, session.Form.Mappings)
	assert.Empty(t, session.Form.SelectedStores)
}

func TestWizardService_RetreatAtFirstStep(t *testing.T) {
	ctx := context.Background()
	svc := newTestWizardService()

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	session, err = svc.Retreat(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Step)
}

func TestWizardService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestWizardService()
	id := uuid.New()

	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = svc.Advance(ctx, id)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	err = svc.Close(ctx, id)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestWizardService_Close(t *testing.T) {
	ctx := context.Background()
	svc := newTestWizardService()

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, session.ID))

	_, err = svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestWizardService_Catalog(t *testing.T) {
	catalog := newTestWizardService().Catalog()

	assert.Len(t, catalog.Steps, 5)
	assert.Len(t, catalog.Connectors, 4)
	assert.Contains(t, catalog.CMSFields, "Product Name")
	assert.Contains(t, catalog.SourceColumns, "product_name")
	assert.Contains(t, catalog.Stores, "TechMart Downtown")
}
