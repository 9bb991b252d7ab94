package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"partner-portal-backend/internal/domain"
)

var validate = newValidator()

var countPattern = regexp.MustCompile(`^\d+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("race", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.RaceOptions, fl.Field().String())
	})
	v.RegisterValidation("ethnicity", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.EthnicityOptions, fl.Field().String())
	})
	v.RegisterValidation("boolstr", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "true" || s == "false"
	})
	v.RegisterValidation("countstr", func(fl validator.FieldLevel) bool {
		return countPattern.MatchString(fl.Field().String())
	})

	return v
}

// Validate checks a payload struct and collects every violation. It returns
// nil when the payload is valid.
func Validate(payload any) *domain.ValidationError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "", Message: err.Error()},
		}}
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return &domain.ValidationError{Fields: fields}
}

// Form labels used in violation messages, matching the intake form wording.
var fieldLabels = map[string]string{
	"id":                          "Partner ID",
	"partnerId":                   "Partner ID",
	"partnerName":                 "Partner Name",
	"partnerEmail":                "Partner Email",
	"caseManagerName":             "Case Manager's Name",
	"caseManagerEmail":            "Case Manager's Email",
	"caseManagerPhone":            "Case Manager's Phone",
	"recipientsName":              "Recipient's Name",
	"recipientsStreetAddress":     "Recipient's Street Address",
	"recipientsCity":              "Recipient's City",
	"recipientsState":             "Recipient's State",
	"recipientsZip":               "Recipient's Zip Code",
	"recipientsEmail":             "Recipient's Email",
	"recipientsPhone":             "Recipient's Phone",
	"race":                        "Race",
	"ethnicity":                   "Ethnicity",
	"numberOfMenInHousehold":      "Number of Men in Household",
	"numberOfWomenInHousehold":    "Number of Women in Household",
	"numberOfChildrenInHousehold": "Number of Children in Household",
	"employedHousehold":           "Employed Household status",
	"englishSpeaking":             "English Speaking status",
	"descriptionOfNeed":           "Description of Need",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func message(fe validator.FieldError) string {
	l := label(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return l + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", l, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", l, fe.Param())
	case "email":
		if fe.Field() == "recipientsEmail" {
			return "Invalid recipient email format"
		}
		return "Invalid email format"
	case "race":
		return "Race must be one of the offered options"
	case "ethnicity":
		return "Ethnicity must be one of the offered options"
	case "boolstr":
		return l + ` must be "true" or "false"`
	case "countstr":
		return l + " must be a non-negative whole number"
	default:
		return fmt.Sprintf("%s failed %s validation", l, fe.Tag())
	}
}
