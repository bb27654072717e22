package services

import (
	"errors"
	"sort"
	"strings"
)

// Failure taxonomy surfaced to the HTTP layer. Persistence problems that do
// not map onto one of these are returned as-is and treated as ErrPersistence
// by the controllers.
var (
	ErrNotFound          = errors.New("teacher not found")
	ErrInvalidIdentifier = errors.New("invalid teacher id")
	ErrDuplicateIdentity = errors.New("this aadhar number is already registered")
)

// ValidationError carries the per-field rule violations of a rejected payload
type ValidationError struct {
	Fields map[string]string
}

// Error joins the field messages into one deterministic, human-readable message
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, e.Fields[field])
	}
	return strings.Join(messages, ", ")
}
