package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"partner-portal-backend/internal/service"
	"partner-portal-backend/internal/validation"
)

type RequestHandler struct {
	svc   service.RequestService
	relay service.WebhookRelay
}

func NewRequestHandler(svc service.RequestService, relay service.WebhookRelay) *RequestHandler {
	return &RequestHandler{svc: svc, relay: relay}
}

// Submit is the public intake endpoint. The response carries the generated
// request id and the recorded webhook status; webhook failure never fails
// the submission.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload validation.RequestPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	req, err := h.svc.Submit(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":       "Request submitted successfully",
		"requestId":     req.ID,
		"webhookStatus": req.WebhookStatus,
	})
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload validation.RequestUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	req, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], &payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request deleted successfully"})
}

// WebhookTest relays a canned payload so an admin can verify the configured
// endpoint without creating a request record.
func (h *RequestHandler) WebhookTest(w http.ResponseWriter, r *http.Request) {
	result := h.relay.TestDelivery(r.Context())
	writeJSON(w, http.StatusOK, result)
}
