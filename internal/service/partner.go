package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"partner-portal-backend/internal/domain"
	"partner-portal-backend/internal/logger"
	"partner-portal-backend/internal/repository"
	"partner-portal-backend/internal/validation"
)

const searchLimit = 10

type partnerService struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerService(partnerRepo repository.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) Lookup(ctx context.Context, id string) (*domain.Partner, error) {
	return s.partnerRepo.GetByID(ctx, normalizeID(id))
}

func (s *partnerService) Search(ctx context.Context, query string) ([]domain.Partner, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []domain.Partner{}, nil
	}
	partners, err := s.partnerRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	if partners == nil {
		partners = []domain.Partner{}
	}
	return partners, nil
}

func (s *partnerService) List(ctx context.Context) ([]domain.Partner, error) {
	return s.partnerRepo.List(ctx)
}

func (s *partnerService) Create(ctx context.Context, payload *validation.PartnerPayload) (*domain.Partner, error) {
	if ve := validation.Validate(payload); ve != nil {
		return nil, ve
	}

	id := normalizeID(payload.ID)
	if err := s.requireAbsent(ctx, id); err != nil {
		return nil, err
	}

	p := &domain.Partner{
		ID:                   id,
		PartnerName:          payload.PartnerName,
		PartnerEmail:         optional(payload.PartnerEmail),
		PartnerPhone:         optional(payload.PartnerPhone),
		PartnerStreetAddress: optional(payload.PartnerStreetAddress),
		PartnerCity:          optional(payload.PartnerCity),
		PartnerState:         optional(payload.PartnerState),
		PartnerZip:           optional(payload.PartnerZip),
	}
	if err := s.partnerRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *partnerService) Update(ctx context.Context, currentID string, payload *validation.PartnerUpdatePayload) (*domain.Partner, error) {
	if ve := validation.Validate(payload); ve != nil {
		return nil, ve
	}

	currentID = normalizeID(currentID)
	newID := normalizeID(payload.ID)

	p := &domain.Partner{
		ID:                   currentID,
		PartnerName:          payload.PartnerName,
		PartnerEmail:         optional(payload.PartnerEmail),
		PartnerPhone:         optional(payload.PartnerPhone),
		PartnerStreetAddress: optional(payload.PartnerStreetAddress),
		PartnerCity:          optional(payload.PartnerCity),
		PartnerState:         optional(payload.PartnerState),
		PartnerZip:           optional(payload.PartnerZip),
	}

	// Same or absent id: plain field update.
	if newID == "" || newID == currentID {
		if err := s.partnerRepo.Update(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	// Rename. Refuse before touching anything if the new id is taken.
	if err := s.requireAbsent(ctx, newID); err != nil {
		return nil, err
	}

	p.ID = newID
	if err := s.partnerRepo.Rename(ctx, currentID, p); err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrConflict) {
			// The rename transaction rolls back on failure, so the record
			// stays under its old id; log loudly so operators can verify.
			logger.Error("Partner rename failed", "current_id", currentID, "new_id", newID, "error", err)
		}
		return nil, err
	}
	return p, nil
}

func (s *partnerService) Delete(ctx context.Context, id string) error {
	return s.partnerRepo.Delete(ctx, normalizeID(id))
}

// requireAbsent fails with a conflict when a partner already holds id.
func (s *partnerService) requireAbsent(ctx context.Context, id string) error {
	_, err := s.partnerRepo.GetByID(ctx, id)
	if err == nil {
		return fmt.Errorf("partner id %q: %w", id, domain.ErrConflict)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// optional maps empty or whitespace-only inputs to NULL-able absence.
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
