// Package validator holds the field predicates and form checks run before any
// content generation or rendering work.
package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}$`)
	phoneRe      = regexp.MustCompile(`^\+?[0-9]+$`)
	profileURLRe = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?[a-z0-9-]+(?:\.[a-z0-9-]+)*\.[a-z]{2,}/in/[a-z0-9_.-]+/?$`)
	usernameRe   = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9_.-]*$`)
)

const minPhoneLength = 8

// IsValidEmail reports whether s has the shape local@domain.tld.
func IsValidEmail(s string) bool {
	if strings.Count(s, "@") != 1 || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return emailRe.MatchString(s)
}

// IsValidPhone strips spaces, hyphens and parentheses, then requires at least
// eight characters of digits with an optional leading plus sign.
func IsValidPhone(s string) bool {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, s)
	return len(clean) >= minPhoneLength && phoneRe.MatchString(clean)
}

// IsValidProfileURL accepts an empty value, a bare username, or a
// domain.com/in/username link with an optional scheme.
func IsValidProfileURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if !strings.Contains(s, "/") {
		return usernameRe.MatchString(s)
	}
	return profileURLRe.MatchString(s)
}
