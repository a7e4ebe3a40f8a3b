package httpclient

import (
	"errors"
	"fmt"
)

// ClientError represents different types of REST client errors
type ClientError interface {
	error
	Type() ErrorType
}

// ErrorType defines the category of client error
type ErrorType string

const (
	// RequestFailedError means every attempt failed at the transport level.
	RequestFailedError ErrorType = "request_failed"
	// BadStatusError means a response arrived with a status outside [200,300).
	BadStatusError ErrorType = "bad_status"
	// ParseFailureError means a response body was present but not valid JSON.
	ParseFailureError ErrorType = "parse"
	// ValidationError means the request was rejected before being sent.
	ValidationError ErrorType = "validation"
)

// requestFailedError represents exhausted transport-level retries
type requestFailedError struct {
	message  string
	attempts int
	wrapped  error
}

func (e *requestFailedError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("request failed: %s (attempts: %d): %v", e.message, e.attempts, e.wrapped)
	}
	return fmt.Sprintf("request failed: %s (attempts: %d)", e.message, e.attempts)
}

func (e *requestFailedError) Type() ErrorType {
	return RequestFailedError
}

func (e *requestFailedError) Unwrap() error {
	return e.wrapped
}

func (e *requestFailedError) Attempts() int {
	return e.attempts
}

// badStatusError represents a response with a non-2xx status code
type badStatusError struct {
	message    string
	statusCode int
	body       []byte
}

func (e *badStatusError) Error() string {
	return fmt.Sprintf("bad status: %s (status: %d)", e.message, e.statusCode)
}

func (e *badStatusError) Type() ErrorType {
	return BadStatusError
}

func (e *badStatusError) StatusCode() int {
	return e.statusCode
}

func (e *badStatusError) Body() []byte {
	return e.body
}

// parseError represents a response body that failed JSON decoding
type parseError struct {
	message string
	wrapped error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error: %s: %v", e.message, e.wrapped)
}

func (e *parseError) Type() ErrorType {
	return ParseFailureError
}

func (e *parseError) Unwrap() error {
	return e.wrapped
}

// validationError represents request validation errors
type validationError struct {
	message string
	field   string
}

func (e *validationError) Error() string {
	if e.field != "" {
		return fmt.Sprintf("validation error: %s (field: %s)", e.message, e.field)
	}
	return fmt.Sprintf("validation error: %s", e.message)
}

func (e *validationError) Type() ErrorType {
	return ValidationError
}

// NewRequestFailedError creates an error for exhausted transport retries
func NewRequestFailedError(message string, attempts int, wrapped error) ClientError {
	return &requestFailedError{
		message:  message,
		attempts: attempts,
		wrapped:  wrapped,
	}
}

// NewBadStatusError creates an error for a non-2xx response
func NewBadStatusError(message string, statusCode int, body []byte) ClientError {
	return &badStatusError{
		message:    message,
		statusCode: statusCode,
		body:       body,
	}
}

// NewParseError creates an error for an undecodable response body
func NewParseError(message string, wrapped error) ClientError {
	return &parseError{
		message: message,
		wrapped: wrapped,
	}
}

// NewValidationError creates a new request validation error
func NewValidationError(message, field string) ClientError {
	return &validationError{
		message: message,
		field:   field,
	}
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	if err == nil {
		return false
	}
	var clientErr ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type() == errorType
	}
	return false
}

// IsBadStatus checks if an error is a BadStatus error with a specific status code
func IsBadStatus(err error, statusCode int) bool {
	var statusErr *badStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode() == statusCode
	}
	return false
}

// IsSuccessStatus checks if a status code represents success (2xx)
func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
