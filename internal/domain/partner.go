package domain

// Partner is an organization authorized to submit recipient-assistance
// requests. IDs are 3-9 characters and stored uppercase; lookups normalize
// before comparing.
type Partner struct {
	ID                   string  `json:"id"`
	PartnerName          string  `json:"partnerName"`
	PartnerEmail         *string `json:"partnerEmail"`
	PartnerPhone         *string `json:"partnerPhone"`
	PartnerStreetAddress *string `json:"partnerStreetAddress"`
	PartnerCity          *string `json:"partnerCity"`
	PartnerState         *string `json:"partnerState"`
	PartnerZip           *string `json:"partnerZip"`
}
