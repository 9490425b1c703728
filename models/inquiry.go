package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a contact form submission.
type Inquiry struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ServiceInterest string    `json:"serviceInterest,omitempty"`
	Message         string    `json:"message"`
	Timestamp       time.Time `json:"timestamp"`
}
