package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrWizardNotFound   = errors.New("booking session not found")
	ErrUnknownService   = errors.New("unknown service")
	ErrWrongStep        = errors.New("field does not belong to the current step")
	ErrNotAtReview      = errors.New("booking can only be submitted from the review step")
	ErrAlreadySubmitted = errors.New("booking already submitted")
	ErrNotSubmitted     = errors.New("booking has not been submitted")
	ErrInvalidInput     = errors.New("invalid input")
)

// ErrorKind classifies a field validation failure.
type ErrorKind string

const (
	MissingField     ErrorKind = "MissingField"
	MissingSelection ErrorKind = "MissingSelection"
	InvalidFormat    ErrorKind = "InvalidFormat"
)

type FieldError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ValidationErrors maps a field name to what is wrong with it. A non-empty
// map blocks the action that produced it.
type ValidationErrors map[string]FieldError

func (v ValidationErrors) add(field string, kind ErrorKind, message string) {
	v[field] = FieldError{Kind: kind, Message: message}
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f].Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation failure.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// orNil returns v as an error, or nil when it is empty.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
