package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"partner-portal-backend/internal/service"
	"partner-portal-backend/internal/validation"
)

type PartnerHandler struct {
	svc service.PartnerService
}

func NewPartnerHandler(svc service.PartnerService) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

// Lookup is the public exact-id lookup used by the partner portal.
func (h *PartnerHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	partner, err := h.svc.Lookup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partner)
}

// Search is the public fuzzy search; queries shorter than two characters
// return an empty list rather than an error.
func (h *PartnerHandler) Search(w http.ResponseWriter, r *http.Request) {
	partners, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	partners, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload validation.PartnerPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	partner, err := h.svc.Create(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, partner)
}

func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	partner, err := h.svc.Lookup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partner)
}

// Update edits a partner's fields; a payload id differing from the path id
// renames the record.
func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload validation.PartnerUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	partner, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], &payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partner)
}

func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Partner deleted successfully"})
}
