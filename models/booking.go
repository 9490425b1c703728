package models

import "time"

// LawnSizes are the property size brackets offered in the booking wizard.
var LawnSizes = []string{
	"Small (under 2,000 sq ft)",
	"Medium (2,000 - 5,000 sq ft)",
	"Large (5,000 - 10,000 sq ft)",
	"Extra Large (over 10,000 sq ft)",
}

func ValidLawnSize(s string) bool {
	for _, known := range LawnSizes {
		if s == known {
			return true
		}
	}
	return false
}

type PropertyDetails struct {
	Address  string `json:"address"`
	LawnSize string `json:"lawnSize"`
}

type ContactDetails struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"` // YYYY-MM-DD
	Notes         string `json:"notes"`
}

// Booking is a submitted booking request. Services holds the service names
// as they were at submission time, not references to the service list.
type Booking struct {
	ReferenceNumber string          `json:"referenceNumber"`
	Services        []string        `json:"services"`
	Property        PropertyDetails `json:"property"`
	Contact         ContactDetails  `json:"contact"`
	Timestamp       time.Time       `json:"timestamp"`
}
