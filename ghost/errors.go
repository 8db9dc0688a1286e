package ghost

import (
	"errors"
	"fmt"
	"unicode/utf8"

	apierrors "github.com/howToCodeWell/ghost-content-api/internal/errors"
)

// ValidationError is returned for invalid identifiers before any request is made
type ValidationError = apierrors.ValidationError

// StatusError carries a non-2xx response and its parsed Ghost error envelope
type StatusError = apierrors.StatusError

// ConfigurationError indicates the client is not ready to send requests
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func errMissingToken() *ConfigurationError {
	return &ConfigurationError{Message: "API token must be set"}
}

// TransportError wraps a failure reported by the transport.
// URL never carries the API key.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the response body was not valid JSON
type DecodeError struct {
	Err     error
	Snippet string // leading bytes of the offending body
}

func (e *DecodeError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("failed to decode response: %v", e.Err)
	}
	return fmt.Sprintf("failed to decode response: %v (body: %q)", e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if the error is a ConfigurationError
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsTransportError checks if the error is a TransportError
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsDecodeError checks if the error is a DecodeError
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsValidationError checks if the error is a ValidationError
func IsValidationError(err error) bool {
	return apierrors.IsValidation(err)
}

// IsNotFound reports whether the site answered 404
func IsNotFound(err error) bool {
	return apierrors.IsNotFound(err)
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	return apierrors.StatusCode(err)
}

const snippetLimit = 120

func newDecodeError(err error, body []byte) *DecodeError {
	snippet := string(body)
	if len(snippet) > snippetLimit {
		cut := snippetLimit
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut] + "..."
	}
	return &DecodeError{Err: err, Snippet: snippet}
}
