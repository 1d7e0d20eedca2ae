package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"retailvision/internal/handler"
	"retailvision/internal/repository"
	"retailvision/internal/seed"
	"retailvision/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	dataset := seed.Default()

	catalogRepo := repository.NewCatalogRepository(dataset, logger)
	planogramService := service.NewPlanogramService(
		catalogRepo,
		repository.NewBoardRepository(),
		repository.NewMemoryLayoutRepository(logger),
		logger,
	)

	return New(Handlers{
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(catalogRepo, logger), logger),
		Catalog: handler.NewCatalogHandler(
			service.NewRetailerService(catalogRepo, logger),
			service.NewStoreService(catalogRepo, logger),
			service.NewProductService(catalogRepo, logger),
			logger,
		),
		Configuration: handler.NewConfigurationHandler(
			service.NewConfigurationService(repository.NewFlowRepository(dataset.Flows, logger), logger), logger),
		Wizard:    handler.NewWizardHandler(service.NewWizardService(repository.NewWizardRepository(logger), logger), logger),
		Planogram: handler.NewPlanogramHandler(planogramService, logger),
	}, "router-key", logger)
}

func TestRouter(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{name: "health without key", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "dashboard without key", method: http.MethodGet, path: "/api/dashboard", expectedStatus: http.StatusUnauthorized},
		{name: "dashboard", method: http.MethodGet, path: "/api/dashboard", apiKey: "router-key", expectedStatus: http.StatusOK},
		{name: "retailer countries", method: http.MethodGet, path: "/api/retailers/countries", apiKey: "router-key", expectedStatus: http.StatusOK},
		{name: "product categories beat product id", method: http.MethodGet, path: "/api/products/categories", apiKey: "router-key", expectedStatus: http.StatusOK},
		{name: "non-numeric product id", method: http.MethodGet, path: "/api/products/abc", apiKey: "router-key", expectedStatus: http.StatusBadRequest},
		{name: "configuration stats", method: http.MethodGet, path: "/api/configurations/stats", apiKey: "router-key", expectedStatus: http.StatusOK},
		{name: "wizard catalog", method: http.MethodGet, path: "/api/wizard/catalog", apiKey: "router-key", expectedStatus: http.StatusOK},
		{name: "planogram zones", method: http.MethodGet, path: "/api/planogram/zones", apiKey: "router-key", expectedStatus: http.StatusOK},
		{name: "wrong method", method: http.MethodDelete, path: "/api/dashboard", apiKey: "router-key", expectedStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", apiKey: "router-key", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_Preflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/stores", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
