package billing

import (
	"errors"
	"regexp"
)

// E.164-ish: optional +, leading non-zero digit, 2-15 digits total.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks a customer contact number used for receipt
// delivery. The caller is expected to trim whitespace first.
func ValidatePhone(phone string) error {
	if phone == "" {
		return errors.New("phone number is required")
	}
	if !phonePattern.MatchString(phone) {
		return errors.New("invalid phone number format, use country code (e.g. +1234567890)")
	}
	return nil
}
