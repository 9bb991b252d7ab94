package repository

import (
	"context"
	"time"

	"partner-portal-backend/internal/domain"
)

type PartnerRepository interface {
	Create(ctx context.Context, p *domain.Partner) error
	GetByID(ctx context.Context, id string) (*domain.Partner, error)
	List(ctx context.Context) ([]domain.Partner, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Partner, error)
	Update(ctx context.Context, p *domain.Partner) error
	// Rename changes a partner's primary id and applies the submitted fields
	// in a single transactional key-changing update.
	Rename(ctx context.Context, currentID string, p *domain.Partner) error
	Delete(ctx context.Context, id string) error
}

type RequestRepository interface {
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
	Update(ctx context.Context, r *domain.Request) error
	Delete(ctx context.Context, id string) error
	UpdateWebhookStatus(ctx context.Context, id string, status domain.WebhookStatus) error
	// MarkStalePending flips requests still pending before the cutoff to
	// failed and returns how many were touched.
	MarkStalePending(ctx context.Context, cutoff time.Time) (int64, error)
	CountByWebhookStatus(ctx context.Context) (map[domain.WebhookStatus]int64, error)
}
