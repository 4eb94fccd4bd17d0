package validator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cv-builder/internal/model"
)

const (
	msgRequired     = "Error: Los campos Nombre, Email y Teléfono son obligatorios."
	msgEmail        = "El formato del email no es válido."
	msgPhone        = "El formato del teléfono no es válido."
	msgProfileURL   = "El formato del perfil profesional no es válido."
	msgUnknownModel = "Proveedor de IA no válido."
)

// minAPIKeyLength is the shortest key accepted for backends that need one.
const minAPIKeyLength = 10

// Error is a rejected form. Message is meant for the person filling the form.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	required = validation.Required.Error(msgRequired)
	email    = predicate(IsValidEmail, msgEmail)
	phone    = predicate(IsValidPhone, msgPhone)
	profile  = predicate(IsValidProfileURL, msgProfileURL)
)

func predicate(ok func(string) bool, msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" || ok(s) {
			return nil
		}
		return errors.New(msg)
	})
}

type field struct {
	name  string
	value string
	rules []validation.Rule
}

func check(fields []field) error {
	for _, f := range fields {
		if err := validation.Validate(strings.TrimSpace(f.value), f.rules...); err != nil {
			return &Error{Field: f.name, Message: err.Error()}
		}
	}
	return nil
}

// Validate checks the three required fields. Missing fields are reported
// before malformed ones; otherwise the first failing field wins.
func Validate(name, emailAddr, phoneNumber string) error {
	return check([]field{
		{"name", name, []validation.Rule{required}},
		{"email", emailAddr, []validation.Rule{required}},
		{"phone", phoneNumber, []validation.Rule{required}},
		{"email", emailAddr, []validation.Rule{email}},
		{"phone", phoneNumber, []validation.Rule{phone}},
	})
}

// Valid is the boolean form of Validate.
func Valid(name, emailAddr, phoneNumber string) bool {
	return Validate(name, emailAddr, phoneNumber) == nil
}

// ValidateCandidate runs Validate and then the optional profile link check.
func ValidateCandidate(in model.CandidateInput) error {
	if err := Validate(in.Name, in.Email, in.Phone); err != nil {
		return err
	}
	return check([]field{{"profile_url", in.ProfileURL, []validation.Rule{profile}}})
}

// CheckAPIKey rejects keyed backends whose key is missing or implausibly short.
// known is false when the backend id did not resolve.
func CheckAPIKey(known, requiresKey bool, backendName, key string) error {
	if !known {
		return &Error{Field: "backend", Message: msgUnknownModel}
	}
	if !requiresKey {
		return nil
	}
	if len(strings.TrimSpace(key)) < minAPIKeyLength {
		return &Error{Field: "api_key", Message: fmt.Sprintf("Se requiere una API key válida para %s", backendName)}
	}
	return nil
}
