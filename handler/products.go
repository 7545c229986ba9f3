package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"luxe-living/catalog"
	"luxe-living/service"
)

// ListProducts handles GET /api/products
// query: category, minPrice, maxPrice, featured, sort, limit
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListProducts(catalog.ParseQuery(r.URL.Query())))
}

// GetProduct handles GET /api/products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		// a malformed id is just another product that does not exist
		writeServiceErr(w, service.ErrProductNotFound)
		return
	}
	p, err := h.svc.GetProduct(id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.svc.ListCategories())
}

// ListTestimonials handles GET /api/testimonials
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.svc.ListTestimonials())
}

// ListGallery handles GET /api/gallery?category=...
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.svc.ListGallery(r.URL.Query().Get("category")))
}

// GetCustomOptions handles GET /api/custom-options
func (h *Handler) GetCustomOptions(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.svc.GetCustomOptions())
}

// GetStatistics handles GET /api/statistics
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.svc.GetStatistics())
}
