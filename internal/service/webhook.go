package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"partner-portal-backend/internal/domain"
	"partner-portal-backend/internal/logger"
)

const (
	webhookSource      = "Partner Request Portal"
	maxResponseCapture = 4 << 10
)

// WebhookPayload is the normalized body relayed to the configured endpoint:
// the full request, the partner snapshot, and a submission timestamp.
type WebhookPayload struct {
	RequestID                   string  `json:"requestId"`
	PartnerID                   string  `json:"partnerId"`
	PartnerName                 string  `json:"partnerName"`
	PartnerEmail                *string `json:"partnerEmail"`
	PartnerPhone                *string `json:"partnerPhone"`
	CaseManagerName             string  `json:"caseManagerName"`
	CaseManagerEmail            string  `json:"caseManagerEmail"`
	CaseManagerPhone            string  `json:"caseManagerPhone"`
	RecipientsName              string  `json:"recipientsName"`
	RecipientsStreetAddress     string  `json:"recipientsStreetAddress"`
	RecipientsCity              string  `json:"recipientsCity"`
	RecipientsState             string  `json:"recipientsState"`
	RecipientsZip               string  `json:"recipientsZip"`
	RecipientsEmail             string  `json:"recipientsEmail"`
	RecipientsPhone             string  `json:"recipientsPhone"`
	Race                        string  `json:"race"`
	Ethnicity                   string  `json:"ethnicity"`
	NumberOfMenInHousehold      string  `json:"numberOfMenInHousehold"`
	NumberOfWomenInHousehold    string  `json:"numberOfWomenInHousehold"`
	NumberOfChildrenInHousehold string  `json:"numberOfChildrenInHousehold"`
	EmployedHousehold           string  `json:"employedHousehold"`
	EnglishSpeaking             string  `json:"englishSpeaking"`
	DescriptionOfNeed           string  `json:"descriptionOfNeed"`
	Source                      string  `json:"source"`
	Timestamp                   string  `json:"timestamp"`
}

// NewWebhookPayload flattens a stored request and its partner snapshot into
// the relay body.
func NewWebhookPayload(req *domain.Request, partner *domain.Partner) *WebhookPayload {
	return &WebhookPayload{
		RequestID:                   req.ID,
		PartnerID:                   partner.ID,
		PartnerName:                 partner.PartnerName,
		PartnerEmail:                partner.PartnerEmail,
		PartnerPhone:                partner.PartnerPhone,
		CaseManagerName:             req.CaseManagerName,
		CaseManagerEmail:            req.CaseManagerEmail,
		CaseManagerPhone:            req.CaseManagerPhone,
		RecipientsName:              req.RecipientsName,
		RecipientsStreetAddress:     req.RecipientsStreetAddress,
		RecipientsCity:              req.RecipientsCity,
		RecipientsState:             req.RecipientsState,
		RecipientsZip:               req.RecipientsZip,
		RecipientsEmail:             req.RecipientsEmail,
		RecipientsPhone:             req.RecipientsPhone,
		Race:                        req.Race,
		Ethnicity:                   req.Ethnicity,
		NumberOfMenInHousehold:      req.NumberOfMenInHousehold,
		NumberOfWomenInHousehold:    req.NumberOfWomenInHousehold,
		NumberOfChildrenInHousehold: req.NumberOfChildrenInHousehold,
		EmployedHousehold:           req.EmployedHousehold,
		EnglishSpeaking:             req.EnglishSpeaking,
		DescriptionOfNeed:           req.DescriptionOfNeed,
		Source:                      webhookSource,
		Timestamp:                   time.Now().UTC().Format(time.RFC3339),
	}
}

type webhookRelay struct {
	url    string
	client *http.Client
}

// NewWebhookRelay builds a relay for the configured destination. An empty url
// means the relay is disabled: every delivery classifies as failed without
// raising an error to the submitter.
func NewWebhookRelay(url string, timeout time.Duration) WebhookRelay {
	return &webhookRelay{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (w *webhookRelay) Deliver(ctx context.Context, payload *WebhookPayload) DeliveryResult {
	if w.url == "" {
		logger.Warn("Webhook URL not configured, marking delivery failed", "request_id", payload.RequestID)
		return DeliveryResult{Status: domain.WebhookStatusFailed, Detail: "webhook url not configured"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode webhook payload", "request_id", payload.RequestID, "error", err)
		return DeliveryResult{Status: domain.WebhookStatusFailed, Detail: fmt.Sprintf("encode payload: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return DeliveryResult{Status: domain.WebhookStatusFailed, Detail: fmt.Sprintf("build request: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(httpReq)
	if err != nil {
		logger.Error("Webhook delivery failed", "request_id", payload.RequestID, "error", err)
		return DeliveryResult{Status: domain.WebhookStatusFailed, Detail: err.Error()}
	}
	defer resp.Body.Close()

	captured, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseCapture))
	result := DeliveryResult{
		HTTPStatus: resp.StatusCode,
		Body:       string(captured),
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result.Status = domain.WebhookStatusSuccessful
		logger.Info("Webhook delivered", "request_id", payload.RequestID, "status", resp.StatusCode, "body", result.Body)
	} else {
		result.Status = domain.WebhookStatusFailed
		logger.Error("Webhook rejected", "request_id", payload.RequestID, "status", resp.StatusCode, "body", result.Body)
	}
	return result
}

// TestDelivery relays a canned payload so the endpoint can be verified
// without submitting a real request.
func (w *webhookRelay) TestDelivery(ctx context.Context) DeliveryResult {
	payload := &WebhookPayload{
		RequestID:                   fmt.Sprintf("test_%d", time.Now().UnixMilli()),
		PartnerID:                   "TEST123",
		PartnerName:                 "Test Partner",
		CaseManagerName:             "Test Case Manager",
		CaseManagerEmail:            "test@example.com",
		CaseManagerPhone:            "555-123-4567",
		RecipientsName:              "Test Recipient",
		RecipientsStreetAddress:     "123 Test St",
		RecipientsCity:              "Test City",
		RecipientsState:             "TS",
		RecipientsZip:               "12345",
		RecipientsEmail:             "recipient@example.com",
		RecipientsPhone:             "555-987-6543",
		Race:                        "White",
		Ethnicity:                   "Not Hispanic or Latino or Spanish Origin",
		NumberOfMenInHousehold:      "1",
		NumberOfWomenInHousehold:    "1",
		NumberOfChildrenInHousehold: "2",
		EmployedHousehold:           "true",
		EnglishSpeaking:             "true",
		DescriptionOfNeed:           "Test request for webhook verification",
		Source:                      webhookSource,
		Timestamp:                   time.Now().UTC().Format(time.RFC3339),
	}
	return w.Deliver(ctx, payload)
}
