package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	models "luxe-living/model"
	"luxe-living/service"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Handler is the HTTP layer that talks to service.ServiceInterface
type Handler struct {
	svc service.ServiceInterface
}

// NewHandler returns a Handler instance
func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{svc: s}
}

// RegisterRoutes registers all routes on the provided router. limited wraps
// the endpoints that create records: cart sessions and lead submissions.
func (h *Handler) RegisterRoutes(r *mux.Router, limited ...mux.MiddlewareFunc) {
	r.HandleFunc("/healthz", h.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Catalog
	api.HandleFunc("/products", h.ListProducts).Methods("GET")
	api.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	api.HandleFunc("/categories", h.ListCategories).Methods("GET")
	api.HandleFunc("/testimonials", h.ListTestimonials).Methods("GET")
	api.HandleFunc("/gallery", h.ListGallery).Methods("GET")
	api.HandleFunc("/custom-options", h.GetCustomOptions).Methods("GET")
	api.HandleFunc("/statistics", h.GetStatistics).Methods("GET")

	// Cart
	api.Handle("/cart/session", chain(h.NewCartSession, limited)).Methods("POST")
	api.HandleFunc("/cart/list", h.ListCart).Methods("GET")
	api.HandleFunc("/cart/add", h.AddToCart).Methods("POST")
	api.HandleFunc("/cart/remove", h.RemoveFromCart).Methods("POST")
	api.HandleFunc("/cart/update", h.UpdateCartQuantity).Methods("POST")
	api.HandleFunc("/cart/clear", h.ClearCart).Methods("POST")

	// Leads
	api.Handle("/contact", chain(h.SubmitContact, limited)).Methods("POST")
	api.Handle("/custom-request", chain(h.SubmitCustomRequest, limited)).Methods("POST")
	api.Handle("/newsletter", chain(h.Subscribe, limited)).Methods("POST")

	// Pre-flight. Router middleware only runs on a matched route, so OPTIONS
	// needs one of its own for CORS to answer it.
	api.PathPrefix("/").Methods("OPTIONS").HandlerFunc(h.Preflight)
}

func chain(hf http.HandlerFunc, mws []mux.MiddlewareFunc) http.Handler {
	var out http.Handler = hf
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// --- helpers ---
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]interface{}{"success": false, "message": msg})
}

func writeData(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, map[string]interface{}{"success": true, "data": data})
}

func writeList[T any](w http.ResponseWriter, items []T) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "count": len(items), "data": items})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// writeServiceErr maps service errors to status codes and shopper-facing messages.
func writeServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		writeErr(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, service.ErrSessionRequired):
		writeErr(w, http.StatusBadRequest, "session_id required")
	case errors.Is(err, service.ErrSessionNotFound):
		writeErr(w, http.StatusNotFound, "Cart session not found")
	case errors.Is(err, models.ErrMissingFields):
		writeErr(w, http.StatusBadRequest, "Please provide all required fields")
	case errors.Is(err, models.ErrMissingEmail):
		writeErr(w, http.StatusBadRequest, "Please provide an email address")
	case errors.Is(err, service.ErrIntakeFailed):
		log.Printf("lead intake failed: %v", err)
		writeErr(w, http.StatusBadGateway, "We could not record your submission. Please try again.")
	default:
		log.Printf("unexpected error: %v", err)
		writeErr(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Preflight handles OPTIONS /api/...
func (h *Handler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
