// Package letter holds the validated intake form that a cease-communication
// letter is rendered from. Normalization and validation happen once, at the
// boundary; the resulting Form is treated as an immutable snapshot afterwards.
package letter

import (
	"regexp"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Language selects which statutory template the letter is rendered with.
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

// RawForm is the untyped intake payload as submitted by the checkout flow.
// Field names mirror the public API contract.
type RawForm struct {
	Language string `json:"language"`

	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`

	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	CollectorName    string `json:"collectorName"`
	CollectorAddress string `json:"collectorAddress"`
	AccountReference string `json:"accountReference"`
}

// Form is the normalized, validated intake record. All strings are trimmed,
// the state code is uppercased, and optional fields are either a non-empty
// trimmed value or empty (meaning absent). A Form only comes out of ParseForm,
// and nothing downstream may alter it: it fixes the legal substance of the
// letter that was or will be mailed.
type Form struct {
	Language Language `json:"language"`

	FullName     string `json:"fullName" validate:"required,min=2"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Zip          string `json:"zip" validate:"required,zip"`

	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`

	CollectorName    string `json:"collectorName" validate:"required"`
	CollectorAddress string `json:"collectorAddress,omitempty"`
	AccountReference string `json:"accountReference,omitempty"`
}

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// validate is the shared validator instance with the zip rule registered.
var validate = newValidator()

func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	// Registration only fails for an empty tag or nil fn; both are constants here.
	_ = v.RegisterValidation("zip", func(fl validatorv10.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})
	return v
}

// fieldMessages maps struct field names to the user-facing error strings.
// These are part of the public contract with the intake form UI.
var fieldMessages = map[string]string{
	"FullName":      "Full name is required.",
	"AddressLine1":  "Street address is required.",
	"City":          "City is required.",
	"State":         "State is required.",
	"Zip":           "A valid ZIP code is required.",
	"Email":         "A valid email address is required.",
	"PhoneNumber":   "Phone number is required.",
	"CollectorName": "Collection agency name is required.",
}

// ParseForm normalizes and validates a raw intake payload. On success it
// returns the canonical Form; on failure it returns every validation message
// at once so the form UI can highlight all offending fields in one pass.
// ParseForm is pure: no I/O, no side effects.
func ParseForm(raw RawForm) (Form, []string) {
	form := Form{
		Language: parseLanguage(raw.Language),

		FullName:     strings.TrimSpace(raw.FullName),
		AddressLine1: strings.TrimSpace(raw.AddressLine1),
		AddressLine2: strings.TrimSpace(raw.AddressLine2),
		City:         strings.TrimSpace(raw.City),
		State:        strings.ToUpper(strings.TrimSpace(raw.State)),
		Zip:          strings.TrimSpace(raw.Zip),

		Email:       strings.TrimSpace(raw.Email),
		PhoneNumber: strings.TrimSpace(raw.PhoneNumber),

		CollectorName:    strings.TrimSpace(raw.CollectorName),
		CollectorAddress: strings.TrimSpace(raw.CollectorAddress),
		AccountReference: strings.TrimSpace(raw.AccountReference),
	}

	if err := validate.Struct(form); err != nil {
		var messages []string
		if verrs, ok := err.(validatorv10.ValidationErrors); ok {
			seen := make(map[string]bool, len(verrs))
			for _, fe := range verrs {
				msg, known := fieldMessages[fe.StructField()]
				if !known || seen[msg] {
					continue
				}
				seen[msg] = true
				messages = append(messages, msg)
			}
		}
		if len(messages) == 0 {
			messages = []string{"Form data is invalid."}
		}
		return Form{}, messages
	}

	return form, nil
}

// parseLanguage defaults anything that is not Spanish to English,
// matching the two-value language enumeration of the intake contract.
func parseLanguage(s string) Language {
	if Language(strings.TrimSpace(s)) == LanguageES {
		return LanguageES
	}
	return LanguageEN
}
