package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the public portal endpoints and the token-gated admin
// surface onto a single mux router.
func NewRouter(partners *PartnerHandler, requests *RequestHandler, adminToken string) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Public portal surface. Search registers before the {id} lookup so the
	// literal path wins.
	api.HandleFunc("/partners/search", partners.Search).Methods(http.MethodGet)
	api.HandleFunc("/partners/{id}", partners.Lookup).Methods(http.MethodGet)
	api.HandleFunc("/requests", requests.Submit).Methods(http.MethodPost)

	// Admin surface.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuth(adminToken))
	admin.HandleFunc("/partners", partners.List).Methods(http.MethodGet)
	admin.HandleFunc("/partners", partners.Create).Methods(http.MethodPost)
	admin.HandleFunc("/partners/{id}", partners.Get).Methods(http.MethodGet)
	admin.HandleFunc("/partners/{id}", partners.Update).Methods(http.MethodPut)
	admin.HandleFunc("/partners/{id}", partners.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/requests", requests.List).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{id}", requests.Get).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{id}", requests.Update).Methods(http.MethodPut)
	admin.HandleFunc("/requests/{id}", requests.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/webhook-test", requests.WebhookTest).Methods(http.MethodPost)

	return r
}
