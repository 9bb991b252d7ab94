package domain

import "time"

type WebhookStatus string

const (
	WebhookStatusPending    WebhookStatus = "pending"
	WebhookStatusSuccessful WebhookStatus = "successful"
	WebhookStatusFailed     WebhookStatus = "failed"
)

// Request is a single recipient-assistance submission. Business fields are
// immutable once created via the public submission flow; only WebhookStatus
// is updated afterwards. PartnerID and PartnerName are snapshots taken at
// submission time and are not cascaded when the partner is later edited,
// renamed or deleted.
type Request struct {
	ID                          string        `json:"id"`
	PartnerID                   string        `json:"partnerId"`
	PartnerName                 string        `json:"partnerName"`
	CaseManagerName             string        `json:"caseManagerName"`
	CaseManagerEmail            string        `json:"caseManagerEmail"`
	CaseManagerPhone            string        `json:"caseManagerPhone"`
	RecipientsName              string        `json:"recipientsName"`
	RecipientsStreetAddress     string        `json:"recipientsStreetAddress"`
	RecipientsCity              string        `json:"recipientsCity"`
	RecipientsState             string        `json:"recipientsState"`
	RecipientsZip               string        `json:"recipientsZip"`
	RecipientsEmail             string        `json:"recipientsEmail"`
	RecipientsPhone             string        `json:"recipientsPhone"`
	Race                        string        `json:"race"`
	Ethnicity                   string        `json:"ethnicity"`
	NumberOfMenInHousehold      string        `json:"numberOfMenInHousehold"`
	NumberOfWomenInHousehold    string        `json:"numberOfWomenInHousehold"`
	NumberOfChildrenInHousehold string        `json:"numberOfChildrenInHousehold"`
	EmployedHousehold           string        `json:"employedHousehold"`
	EnglishSpeaking             string        `json:"englishSpeaking"`
	DescriptionOfNeed           string        `json:"descriptionOfNeed"`
	WebhookStatus               WebhookStatus `json:"webhookStatus"`
	CreatedAt                   time.Time     `json:"createdAt"`
}

// Race and ethnicity options offered on the intake form. Submissions are
// checked against these server-side regardless of any client restriction.
var (
	RaceOptions = []string{
		"American Indian or Alaska Native",
		"Asian",
		"Black or African American",
		"Native Hawaiian or Other Pacific Islander",
		"White",
		"Unknown",
	}
	EthnicityOptions = []string{
		"Hispanic or Latino or Spanish Origin",
		"Not Hispanic or Latino or Spanish Origin",
		"Unknown",
	}
)
