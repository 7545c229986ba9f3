package handler

import (
	"net/http"

	"luxe-living/cart"
)

type cartReq struct {
	SessionID string `json:"session_id"`
	ProductID int64  `json:"product_id"`
	Quantity  *int   `json:"quantity,omitempty"` // update only
}

func writeCart(w http.ResponseWriter, sessionID string, c cart.Cart) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "session_id": sessionID, "data": c})
}

// NewCartSession handles POST /api/cart/session
func (h *Handler) NewCartSession(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusCreated, map[string]string{"session_id": h.svc.NewCartSession()})
}

// ListCart handles GET /api/cart/list?session_id=...
func (h *Handler) ListCart(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	c, err := h.svc.GetCart(sessionID)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeCart(w, sessionID, c)
}

// AddToCart handles POST /api/cart/add
// body: { "session_id": "...", "product_id": 1 }
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartReq
	if !decode(w, r, &req) {
		return
	}
	c, err := h.svc.AddToCart(req.SessionID, req.ProductID)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeCart(w, req.SessionID, c)
}

// RemoveFromCart handles POST /api/cart/remove
// body: { "session_id": "...", "product_id": 1 }
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartReq
	if !decode(w, r, &req) {
		return
	}
	c, err := h.svc.RemoveFromCart(req.SessionID, req.ProductID)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeCart(w, req.SessionID, c)
}

// UpdateCartQuantity handles POST /api/cart/update
// body: { "session_id": "...", "product_id": 1, "quantity": 3 }
func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartReq
	if !decode(w, r, &req) {
		return
	}
	if req.Quantity == nil {
		writeErr(w, http.StatusBadRequest, "quantity required")
		return
	}
	c, err := h.svc.UpdateCartQuantity(req.SessionID, req.ProductID, *req.Quantity)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeCart(w, req.SessionID, c)
}

// ClearCart handles POST /api/cart/clear
// body: { "session_id": "..." }
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	var req cartReq
	if !decode(w, r, &req) {
		return
	}
	c, err := h.svc.ClearCart(req.SessionID)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeCart(w, req.SessionID, c)
}
