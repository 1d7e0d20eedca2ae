package handler

import (
	"net/http"

	"retailvision/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler serves the read-only retailer, store and product screens.
type CatalogHandler struct {
	retailers service.RetailerService
	stores    service.StoreService
	products  service.ProductService
	logger    zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(
	retailers service.RetailerService,
	stores service.StoreService,
	products service.ProductService,
	logger zerolog.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		retailers: retailers,
		stores:    stores,
		products:  products,
		logger:    logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListRetailers handles GET /api/retailers?search=&country=.
func (h *CatalogHandler) ListRetailers(w http.ResponseWriter, r *http.Request) {
	retailers, err := h.retailers.List(r.Context(), listQuery(r, "country"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve retailers", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, retailers)
}

// Countries handles GET /api/retailers/countries.
func (h *CatalogHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.retailers.Countries(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve countries", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

// ListStores handles GET /api/stores?search=&status=.
func (h *CatalogHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.stores.List(r.Context(), listQuery(r, "status"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve stores", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stores)
}

// GetStore handles GET /api/stores/{id}.
func (h *CatalogHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.stores.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve store", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, store)
}

// ListProducts handles GET /api/products?search=&category=.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), listQuery(r, "category"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve products", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve product", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/products/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.Categories(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve categories", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
