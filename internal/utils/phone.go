package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var nonPhoneChars = regexp.MustCompile(`[\s\-().]`)

// e.g. +6421..., 02123..., international E.164 digits
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// NormalizeNZPhone normalizes an NZ phone number to local format (02...).
// Accepts +64, 64 and 0-prefixed inputs.
func NormalizeNZPhone(phone string) (string, error) {
	cleaned := nonPhoneChars.ReplaceAllString(phone, "")
	if cleaned == "" || !phonePattern.MatchString(cleaned) {
		return "", fmt.Errorf("invalid phone number format")
	}

	switch {
	case strings.HasPrefix(cleaned, "+64"):
		return "0" + cleaned[3:], nil
	case strings.HasPrefix(cleaned, "64") && len(cleaned) > 2:
		return "0" + cleaned[2:], nil
	case strings.HasPrefix(cleaned, "0"):
		return cleaned, nil
	default:
		return "0" + cleaned, nil
	}
}

// IsValidPhoneNumber checks whether a string looks like a phone number
func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(nonPhoneChars.ReplaceAllString(phone, ""))
}
