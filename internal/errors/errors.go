// Package errors provides shared error types for the Ghost Content API client.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a single entry of the Ghost error envelope:
//
//	{"errors":[{"message":"Resource not found","type":"NotFoundError"}]}
type APIError struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
	ID      string `json:"id,omitempty"`
}

func (e APIError) String() string {
	var b strings.Builder
	if e.Type != "" {
		b.WriteString(e.Type)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Context != "" {
		b.WriteString(" (")
		b.WriteString(e.Context)
		b.WriteString(")")
	}
	return b.String()
}

// StatusError is returned for non-2xx responses from the Content API.
type StatusError struct {
	StatusCode int
	Errors     []APIError // parsed from the body when it is a Ghost error envelope
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, 0, len(e.Errors))
		for _, apiErr := range e.Errors {
			msgs = append(msgs, apiErr.String())
		}
		return fmt.Sprintf("API error %d: %s", e.StatusCode, strings.Join(msgs, "; "))
	}
	if len(e.Body) > 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, truncate(string(e.Body), 200))
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NewStatusError builds a StatusError, decoding the Ghost error envelope when present.
func NewStatusError(statusCode int, body []byte) *StatusError {
	se := &StatusError{
		StatusCode: statusCode,
		Body:       body,
	}

	var envelope struct {
		Errors []APIError `json:"errors"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		se.Errors = envelope.Errors
	}
	return se
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsNotFound returns true if err carries a 404 StatusError.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
