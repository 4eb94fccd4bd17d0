package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"ana@example.com", "ana.perez+cv@mail.example.es", "a_b%c@dominio.io"}
	invalid := []string{"", "ana", "ana@", "@example.com", "ana@example", "ana@@example.com",
		"ana perez@example.com", "ana@example.c", "ana@.com", "ana@example..com", "ana@example.com "}
	for _, s := range valid {
		assert.True(t, IsValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), s)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"+34 600 123 456", "(91) 555-1234", "60012345", "+1-800-555-0100"}
	invalid := []string{"", "1234567", "+34 ABC 123 456", "600+123456", "++34600123456", "600.123.456"}
	for _, s := range valid {
		assert.True(t, IsValidPhone(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidPhone(s), s)
	}
}

func TestIsValidProfileURL(t *testing.T) {
	valid := []string{"", "  ", "ana-perez", "linkedin.com/in/ana-perez", "https://www.linkedin.com/in/ana_perez/", "HTTPS://LinkedIn.com/IN/Ana"}
	invalid := []string{"linkedin.com/ana", "https://linkedin.com/in/", "ftp://linkedin.com/in/ana", "ana perez", "linkedin/in/ana"}
	for _, s := range valid {
		assert.True(t, IsValidProfileURL(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidProfileURL(s), s)
	}
}
