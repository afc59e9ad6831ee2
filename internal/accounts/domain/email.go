package domain

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail returns the canonical stored form of an address: trimmed
// and lowercased. Lookups and uniqueness checks compare normalized values.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmailFormat reports a validation error when email does not look like
// an address. Construction only requires a non-empty email; the HTTP layer
// applies this stricter check to client input.
func ValidateEmailFormat(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return Validation("Invalid email format")
	}
	return nil
}
