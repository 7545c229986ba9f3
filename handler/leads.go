package handler

import (
	"net/http"

	models "luxe-living/model"
)

// SubmitContact handles POST /api/contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !decode(w, r, &req) {
		return
	}
	receipt, err := h.svc.SubmitContact(r.Context(), req)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeReceipt(w, receipt)
}

// SubmitCustomRequest handles POST /api/custom-request
func (h *Handler) SubmitCustomRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CustomRequest
	if !decode(w, r, &req) {
		return
	}
	receipt, err := h.svc.SubmitCustomRequest(r.Context(), req)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeReceipt(w, receipt)
}

// Subscribe handles POST /api/newsletter
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.Subscription
	if !decode(w, r, &req) {
		return
	}
	receipt, err := h.svc.Subscribe(r.Context(), req)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeReceipt(w, receipt)
}

func writeReceipt(w http.ResponseWriter, rc models.Receipt) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": rc.Message,
		"data":    rc,
	})
}
