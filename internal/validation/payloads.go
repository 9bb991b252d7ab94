package validation

// PartnerPayload is the admin create payload. Contact fields are optional;
// email shape is checked only when a value is present.
type PartnerPayload struct {
	ID                   string  `json:"id" validate:"required,min=3,max=9"`
	PartnerName          string  `json:"partnerName" validate:"required,notblank"`
	PartnerEmail         *string `json:"partnerEmail" validate:"omitempty,email"`
	PartnerPhone         *string `json:"partnerPhone"`
	PartnerStreetAddress *string `json:"partnerStreetAddress"`
	PartnerCity          *string `json:"partnerCity"`
	PartnerState         *string `json:"partnerState"`
	PartnerZip           *string `json:"partnerZip"`
}

// PartnerUpdatePayload is the admin update payload. A non-empty ID that
// differs from the record's current id triggers the rename path.
type PartnerUpdatePayload struct {
	ID                   string  `json:"id" validate:"omitempty,min=3,max=9"`
	PartnerName          string  `json:"partnerName" validate:"required,notblank"`
	PartnerEmail         *string `json:"partnerEmail" validate:"omitempty,email"`
	PartnerPhone         *string `json:"partnerPhone"`
	PartnerStreetAddress *string `json:"partnerStreetAddress"`
	PartnerCity          *string `json:"partnerCity"`
	PartnerState         *string `json:"partnerState"`
	PartnerZip           *string `json:"partnerZip"`
}

// RequestPayload is the public submission payload. Every field is required;
// enumerated fields are checked against their closed set server-side.
type RequestPayload struct {
	PartnerID                   string `json:"partnerId" validate:"required,min=3,max=9"`
	PartnerName                 string `json:"partnerName" validate:"required,notblank"`
	CaseManagerName             string `json:"caseManagerName" validate:"required,notblank"`
	CaseManagerEmail            string `json:"caseManagerEmail" validate:"required,email"`
	CaseManagerPhone            string `json:"caseManagerPhone" validate:"required,notblank"`
	RecipientsName              string `json:"recipientsName" validate:"required,notblank"`
	RecipientsStreetAddress     string `json:"recipientsStreetAddress" validate:"required,notblank"`
	RecipientsCity              string `json:"recipientsCity" validate:"required,notblank"`
	RecipientsState             string `json:"recipientsState" validate:"required,notblank"`
	RecipientsZip               string `json:"recipientsZip" validate:"required,notblank"`
	RecipientsEmail             string `json:"recipientsEmail" validate:"required,email"`
	RecipientsPhone             string `json:"recipientsPhone" validate:"required,notblank"`
	Race                        string `json:"race" validate:"required,race"`
	Ethnicity                   string `json:"ethnicity" validate:"required,ethnicity"`
	NumberOfMenInHousehold      string `json:"numberOfMenInHousehold" validate:"required,countstr"`
	NumberOfWomenInHousehold    string `json:"numberOfWomenInHousehold" validate:"required,countstr"`
	NumberOfChildrenInHousehold string `json:"numberOfChildrenInHousehold" validate:"required,countstr"`
	EmployedHousehold           string `json:"employedHousehold" validate:"required,boolstr"`
	EnglishSpeaking             string `json:"englishSpeaking" validate:"required,boolstr"`
	DescriptionOfNeed           string `json:"descriptionOfNeed" validate:"required,notblank"`
}

// RequestUpdatePayload is the admin correction payload for an existing
// request. The partner snapshot id, webhook status and creation time are not
// editable.
type RequestUpdatePayload struct {
	PartnerName                 string `json:"partnerName" validate:"required,notblank"`
	CaseManagerName             string `json:"caseManagerName" validate:"required,notblank"`
	CaseManagerEmail            string `json:"caseManagerEmail" validate:"required,email"`
	CaseManagerPhone            string `json:"caseManagerPhone" validate:"required,notblank"`
	RecipientsName              string `json:"recipientsName" validate:"required,notblank"`
	RecipientsStreetAddress     string `json:"recipientsStreetAddress" validate:"required,notblank"`
	RecipientsCity              string `json:"recipientsCity" validate:"required,notblank"`
	RecipientsState             string `json:"recipientsState" validate:"required,notblank"`
	RecipientsZip               string `json:"recipientsZip" validate:"required,notblank"`
	RecipientsEmail             string `json:"recipientsEmail" validate:"required,email"`
	RecipientsPhone             string `json:"recipientsPhone" validate:"required,notblank"`
	Race                        string `json:"race" validate:"required,race"`
	Ethnicity                   string `json:"ethnicity" validate:"required,ethnicity"`
	NumberOfMenInHousehold      string `json:"numberOfMenInHousehold" validate:"required,countstr"`
	NumberOfWomenInHousehold    string `json:"numberOfWomenInHousehold" validate:"required,countstr"`
	NumberOfChildrenInHousehold string `json:"numberOfChildrenInHousehold" validate:"required,countstr"`
	EmployedHousehold           string `json:"employedHousehold" validate:"required,boolstr"`
	EnglishSpeaking             string `json:"englishSpeaking" validate:"required,boolstr"`
	DescriptionOfNeed           string `json:"descriptionOfNeed" validate:"required,notblank"`
}
