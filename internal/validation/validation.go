// Package validation checks user-supplied credentials and contact fields.
// Unlike the computational core these checks can fail, but they report
// failure as a structured result rather than an error: callers branch on
// Valid and surface Reason directly.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Result is a validation outcome. Reason is empty when Valid.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\-\s()]{6,18}$`)
)

func invalid(reason string) Result {
	return Result{Reason: reason}
}

// ValidateEmail accepts a plain addr-spec shaped address.
func ValidateEmail(email string) Result {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email is required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("email format is invalid")
	}
	return Result{Valid: true}
}

// ValidatePhone accepts digits with optional leading +, separators allowed.
func ValidatePhone(phone string) Result {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return invalid("phone number is required")
	}
	if !phonePattern.MatchString(phone) {
		return invalid("phone number format is invalid")
	}
	return Result{Valid: true}
}

// ValidatePassword requires at least 8 characters with an upper-case
// letter, a lower-case letter, and a digit.
func ValidatePassword(password string) Result {
	if len(password) < 8 {
		return invalid("password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return invalid("password must contain an upper-case letter")
	case !hasLower:
		return invalid("password must contain a lower-case letter")
	case !hasDigit:
		return invalid("password must contain a digit")
	}
	return Result{Valid: true}
}
