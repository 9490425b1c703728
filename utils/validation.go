// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Optional +, optional parenthesised 1-4 digit prefix, then digits and
	// separators. Accepts "(785) 555-0123", "785.555.0123", "+1 785 555 0123".
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s./0-9]*$`)
)

const (
	MinPhoneLength = 7
	DateLayout     = "2006-01-02"
)

// ValidateEmail checks for a local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone checks if a phone number is in a lenient US-style format
func ValidatePhone(phone string) bool {
	return len(phone) >= MinPhoneLength && phonePattern.MatchString(phone)
}

// ValidateDate checks for a YYYY-MM-DD calendar date.
func ValidateDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
