package router

import (
	"net/http"

	"retailvision/internal/handler"
	"retailvision/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Dashboard     *handler.DashboardHandler
	Catalog       *handler.CatalogHandler
	Configuration *handler.ConfigurationHandler
	Wizard        *handler.WizardHandler
	Planogram     *handler.PlanogramHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/dashboard", h.Dashboard.Get)

	mux.HandleFunc("GET /api/retailers", h.Catalog.ListRetailers)
	mux.HandleFunc("GET /api/retailers/countries", h.Catalog.Countries)
	mux.HandleFunc("GET /api/stores", h.Catalog.ListStores)
	mux.HandleFunc("GET /api/stores/{id}", h.Catalog.GetStore)
	mux.HandleFunc("GET /api/products", h.Catalog.ListProducts)
	mux.HandleFunc("GET /api/products/categories", h.Catalog.Categories)
	mux.HandleFunc("GET /api/products/{id}", h.Catalog.GetProduct)

	mux.HandleFunc("GET /api/configurations", h.Configuration.List)
	mux.HandleFunc("GET /api/configurations/stats", h.Configuration.Stats)
	mux.HandleFunc("GET /api/configurations/{flowId}", h.Configuration.Get)
	mux.HandleFunc("POST /api/configurations/{flowId}/save", h.Configuration.Save)
	mux.HandleFunc("POST /api/configurations/{flowId}/questions", h.Configuration.AddQuestion)
	mux.HandleFunc("PATCH /api/configurations/{flowId}/questions/{questionId}", h.Configuration.UpdateQuestion)
	mux.HandleFunc("DELETE /api/configurations/{flowId}/questions/{questionId}", h.Configuration.DeleteQuestion)

	mux.HandleFunc("GET /api/wizard/catalog", h.Wizard.Catalog)
	mux.HandleFunc("POST /api/wizard", h.Wizard.Start)
	mux.HandleFunc("GET /api/wizard/{id}", h.Wizard.Get)
	mux.HandleFunc("DELETE /api/wizard/{id}", h.Wizard.Close)
	mux.HandleFunc("POST /api/wizard/{id}/advance", h.Wizard.Advance)
	mux.HandleFunc("POST /api/wizard/{id}/retreat", h.Wizard.Retreat)
	mux.HandleFunc("POST /api/wizard/{id}/finish", h.Wizard.Finish)
	mux.HandleFunc("PUT /api/wizard/{id}/details", h.Wizard.SetDetails)
	mux.HandleFunc("PUT /api/wizard/{id}/connector", h.Wizard.SelectConnector)
	mux.HandleFunc("PUT /api/wizard/{id}/api-key", h.Wizard.SetAPIKey)
	mux.HandleFunc("PUT /api/wizard/{id}/mappings", h.Wizard.MapField)
	mux.HandleFunc("PUT /api/wizard/{id}/stores", h.Wizard.ToggleStore)

	mux.HandleFunc("GET /api/planogram/zones", h.Planogram.Zones)
	mux.HandleFunc("GET /api/planogram/products", h.Planogram.Palette)
	mux.HandleFunc("GET /api/planogram/{storeId}", h.Planogram.Board)
	mux.HandleFunc("PUT /api/planogram/{storeId}/zones/{zoneId}", h.Planogram.Assign)
	mux.HandleFunc("DELETE /api/planogram/{storeId}/products/{productId}", h.Planogram.Unassign)
	mux.HandleFunc("GET /api/planogram/{storeId}/products/{productId}/zone", h.Planogram.ZoneOf)
	mux.HandleFunc("POST /api/planogram/{storeId}/layout", h.Planogram.SaveLayout)
	mux.HandleFunc("POST /api/planogram/{storeId}/layout/load", h.Planogram.LoadLayout)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
