package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"partner-portal-backend/internal/domain"
	"partner-portal-backend/internal/service"
	"partner-portal-backend/internal/validation"
)

type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) Lookup(ctx context.Context, id string) (*domain.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) Search(ctx context.Context, query string) ([]domain.Partner, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerService) List(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerService) Create(ctx context.Context, payload *validation.PartnerPayload) (*domain.Partner, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) Update(ctx context.Context, currentID string, payload *validation.PartnerUpdatePayload) (*domain.Partner, error) {
	args := m.Called(ctx, currentID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Submit(ctx context.Context, payload *validation.RequestPayload) (*domain.Request, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestService) List(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

func (m *MockRequestService) Get(ctx context.Context, id string) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestService) Update(ctx context.Context, id string, payload *validation.RequestUpdatePayload) (*domain.Request, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWebhookRelay struct {
	mock.Mock
}

func (m *MockWebhookRelay) Deliver(ctx context.Context, payload *service.WebhookPayload) service.DeliveryResult {
	args := m.Called(ctx, payload)
	return args.Get(0).(service.DeliveryResult)
}

func (m *MockWebhookRelay) TestDelivery(ctx context.Context) service.DeliveryResult {
	args := m.Called(ctx)
	return args.Get(0).(service.DeliveryResult)
}
