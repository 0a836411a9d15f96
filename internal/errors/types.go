package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeProvider   ErrorType = "PROVIDER_ERROR"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

// AppError represents a structured error for the application
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	ErrorCode  string    `json:"errorCode"`
	Details    string    `json:"details,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Code returns the application-specific error code
func (e *AppError) Code() string {
	return e.ErrorCode
}

// Response is the JSON body written for an error.
type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Response maps the error to the payload clients receive. Provider errors
// carry the upstream body in details; other kinds only carry the message.
func (e *AppError) Response() Response {
	if e.Type == ErrorTypeProvider {
		return Response{Error: e.Message, Details: e.Details}
	}
	return Response{Error: e.Message}
}

// NewValidationError creates a new validation error (400)
func NewValidationError(message string, errorCode string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		ErrorCode:  errorCode,
	}
}

// NewProviderError creates an error for a non-200 completion response (500).
// The upstream status is part of the message and the raw body is kept as details.
func NewProviderError(provider string, upstreamStatus int, body string) *AppError {
	return &AppError{
		Type:       ErrorTypeProvider,
		Message:    fmt.Sprintf("%s API error %d", provider, upstreamStatus),
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  "PROVIDER_BAD_STATUS",
		Details:    body,
	}
}

// NewInternalError creates a new internal error (500). The message is the
// underlying failure text so clients see what went wrong.
func NewInternalError(errorCode string, err error) *AppError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    msg,
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  errorCode,
	}
}

// From returns err as an *AppError, wrapping anything else as internal.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("INTERNAL", err)
}
