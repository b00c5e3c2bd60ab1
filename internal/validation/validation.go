// Package validation holds the field predicates shared by the warehouse and
// inventory services. All checks return a bool and leave the error response
// to the caller.
package validation

import "regexp"

var (
	numberRegex = regexp.MustCompile(`^[0-9]+$`)
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Optional leading +, then 1-15 digits. Spaces, dots, dashes and
	// parentheses are tolerated between digit groups.
	phoneRegex = regexp.MustCompile(`^\+?[0-9](?:[ .\-()]*[0-9]){0,14}$`)
)

// IsNumber reports whether s consists entirely of decimal digits. Signs and
// decimal points fail, so negative and fractional quantities are rejected by
// construction.
func IsNumber(s string) bool {
	return numberRegex.MatchString(s)
}

// IsValidEmail reports whether s has a local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhoneNumber reports whether s looks like an international dialing
// number.
func IsValidPhoneNumber(s string) bool {
	return phoneRegex.MatchString(s)
}
