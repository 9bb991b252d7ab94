package service

import (
	"context"

	"partner-portal-backend/internal/domain"
	"partner-portal-backend/internal/validation"
)

type PartnerService interface {
	// Lookup and Search are the public read surface; ids are normalized to
	// uppercase before comparison.
	Lookup(ctx context.Context, id string) (*domain.Partner, error)
	Search(ctx context.Context, query string) ([]domain.Partner, error)

	// Admin operations.
	List(ctx context.Context) ([]domain.Partner, error)
	Create(ctx context.Context, payload *validation.PartnerPayload) (*domain.Partner, error)
	Update(ctx context.Context, currentID string, payload *validation.PartnerUpdatePayload) (*domain.Partner, error)
	Delete(ctx context.Context, id string) error
}

type RequestService interface {
	// Submit runs the full intake workflow: validate, resolve partner,
	// persist, relay to the webhook, record the delivery status.
	Submit(ctx context.Context, payload *validation.RequestPayload) (*domain.Request, error)

	// Admin operations (read-mostly; Update is the correction path).
	List(ctx context.Context) ([]domain.Request, error)
	Get(ctx context.Context, id string) (*domain.Request, error)
	Update(ctx context.Context, id string, payload *validation.RequestUpdatePayload) (*domain.Request, error)
	Delete(ctx context.Context, id string) error
}

// DeliveryResult is the classified outcome of a single webhook attempt.
type DeliveryResult struct {
	Status     domain.WebhookStatus `json:"status"`
	HTTPStatus int                  `json:"httpStatus,omitempty"`
	Body       string               `json:"body,omitempty"`
	Detail     string               `json:"detail,omitempty"`
}

type WebhookRelay interface {
	// Deliver performs one POST attempt with a bounded timeout. It never
	// returns an error; every failure mode folds into the result.
	Deliver(ctx context.Context, payload *WebhookPayload) DeliveryResult
	// TestDelivery relays a canned payload so operators can verify the
	// configured endpoint.
	TestDelivery(ctx context.Context) DeliveryResult
}
