// Package validation holds the shared input rules for account data.
package validation

import "strings"

// PasswordMinLength is the minimum password length for new registrations.
const PasswordMinLength = 6

// EmailLooksValid reports whether the address has the minimal shape the
// system accepts: an '@' and a '.' somewhere in the string. Anything beyond
// that is deliberately not checked; the stored format keeps whatever the
// student typed.
func EmailLooksValid(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// Required reports whether a free-text field is non-empty after trimming.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}
