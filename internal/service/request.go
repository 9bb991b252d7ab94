package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"partner-portal-backend/internal/domain"
	"partner-portal-backend/internal/logger"
	"partner-portal-backend/internal/repository"
	"partner-portal-backend/internal/validation"
)

type requestService struct {
	requestRepo repository.RequestRepository
	partnerRepo repository.PartnerRepository
	relay       WebhookRelay
}

func NewRequestService(requestRepo repository.RequestRepository, partnerRepo repository.PartnerRepository, relay WebhookRelay) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		partnerRepo: partnerRepo,
		relay:       relay,
	}
}

func (s *requestService) Submit(ctx context.Context, payload *validation.RequestPayload) (*domain.Request, error) {
	if ve := validation.Validate(payload); ve != nil {
		return nil, ve
	}

	partner, err := s.partnerRepo.GetByID(ctx, normalizeID(payload.PartnerID))
	if err != nil {
		return nil, fmt.Errorf("partner %q: %w", payload.PartnerID, err)
	}

	req := &domain.Request{
		ID:                          newRequestID(),
		PartnerID:                   partner.ID,
		PartnerName:                 partner.PartnerName,
		CaseManagerName:             payload.CaseManagerName,
		CaseManagerEmail:            payload.CaseManagerEmail,
		CaseManagerPhone:            payload.CaseManagerPhone,
		RecipientsName:              payload.RecipientsName,
		RecipientsStreetAddress:     payload.RecipientsStreetAddress,
		RecipientsCity:              payload.RecipientsCity,
		RecipientsState:             payload.RecipientsState,
		RecipientsZip:               payload.RecipientsZip,
		RecipientsEmail:             payload.RecipientsEmail,
		RecipientsPhone:             payload.RecipientsPhone,
		Race:                        payload.Race,
		Ethnicity:                   payload.Ethnicity,
		NumberOfMenInHousehold:      payload.NumberOfMenInHousehold,
		NumberOfWomenInHousehold:    payload.NumberOfWomenInHousehold,
		NumberOfChildrenInHousehold: payload.NumberOfChildrenInHousehold,
		EmployedHousehold:           payload.EmployedHousehold,
		EnglishSpeaking:             payload.EnglishSpeaking,
		DescriptionOfNeed:           payload.DescriptionOfNeed,
		WebhookStatus:               domain.WebhookStatusPending,
		CreatedAt:                   time.Now().UTC(),
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	// The relay blocks the submission path so the caller gets the authoritative
	// delivery status, but its outcome never fails the submission itself.
	result := s.relay.Deliver(ctx, NewWebhookPayload(req, partner))
	req.WebhookStatus = result.Status

	if err := s.requestRepo.UpdateWebhookStatus(ctx, req.ID, result.Status); err != nil {
		logger.Error("Failed to record webhook status", "request_id", req.ID, "status", result.Status, "error", err)
	}

	return req, nil
}

func (s *requestService) List(ctx context.Context) ([]domain.Request, error) {
	return s.requestRepo.List(ctx)
}

func (s *requestService) Get(ctx context.Context, id string) (*domain.Request, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *requestService) Update(ctx context.Context, id string, payload *validation.RequestUpdatePayload) (*domain.Request, error) {
	if ve := validation.Validate(payload); ve != nil {
		return nil, ve
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.PartnerName = payload.PartnerName
	req.CaseManagerName = payload.CaseManagerName
	req.CaseManagerEmail = payload.CaseManagerEmail
	req.CaseManagerPhone = payload.CaseManagerPhone
	req.RecipientsName = payload.RecipientsName
	req.RecipientsStreetAddress = payload.RecipientsStreetAddress
	req.RecipientsCity = payload.RecipientsCity
	req.RecipientsState = payload.RecipientsState
	req.RecipientsZip = payload.RecipientsZip
	req.RecipientsEmail = payload.RecipientsEmail
	req.RecipientsPhone = payload.RecipientsPhone
	req.Race = payload.Race
	req.Ethnicity = payload.Ethnicity
	req.NumberOfMenInHousehold = payload.NumberOfMenInHousehold
	req.NumberOfWomenInHousehold = payload.NumberOfWomenInHousehold
	req.NumberOfChildrenInHousehold = payload.NumberOfChildrenInHousehold
	req.EmployedHousehold = payload.EmployedHousehold
	req.EnglishSpeaking = payload.EnglishSpeaking
	req.DescriptionOfNeed = payload.DescriptionOfNeed

	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) Delete(ctx context.Context, id string) error {
	return s.requestRepo.Delete(ctx, id)
}

// newRequestID builds a timestamp+random composite id, e.g.
// req_1756600000000_a1b2c3d4.
func newRequestID() string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), frag)
}
