package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := &AppError{
		Message: "something went wrong",
	}
	if err.Error() != "something went wrong" {
		t.Errorf("expected 'something went wrong', got %v", err.Error())
	}

	wrappedErr := errors.New("underlying error")
	errWithWrap := &AppError{
		Message: "failed operation",
		Err:     wrappedErr,
	}
	expected := "failed operation: underlying error"
	if errWithWrap.Error() != expected {
		t.Errorf("expected %q, got %q", expected, errWithWrap.Error())
	}
	if !errors.Is(errWithWrap, wrappedErr) {
		t.Error("expected wrapped error to be reachable through Unwrap")
	}
}

func TestAppError_Code(t *testing.T) {
	err := &AppError{
		ErrorCode: "ERR_CODE_123",
	}
	if err.Code() != "ERR_CODE_123" {
		t.Errorf("expected ERR_CODE_123, got %v", err.Code())
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("No ingredients provided", "NO_INGREDIENTS")
	if err.Type != ErrorTypeValidation {
		t.Errorf("expected TypeValidation, got %v", err.Type)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err.StatusCode)
	}
	resp := err.Response()
	if resp.Error != "No ingredients provided" || resp.Details != "" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestNewProviderError(t *testing.T) {
	err := NewProviderError("Groq", http.StatusServiceUnavailable, `{"error":"overloaded"}`)
	if err.Type != ErrorTypeProvider {
		t.Errorf("expected TypeProvider, got %v", err.Type)
	}
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %v", err.StatusCode)
	}
	resp := err.Response()
	if resp.Error != "Groq API error 503" {
		t.Errorf("expected 'Groq API error 503', got %q", resp.Error)
	}
	if resp.Details != `{"error":"overloaded"}` {
		t.Errorf("expected raw body in details, got %q", resp.Details)
	}
}

func TestNewInternalError(t *testing.T) {
	err := NewInternalError("LOG_WRITE_FAILED", errors.New("connection refused"))
	if err.Type != ErrorTypeInternal {
		t.Errorf("expected TypeInternal, got %v", err.Type)
	}
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %v", err.StatusCode)
	}
	if resp := err.Response(); resp.Error != "connection refused" || resp.Details != "" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantMsg  string
	}{
		{
			name:     "app error passes through",
			err:      NewValidationError("bad", "BAD"),
			wantType: ErrorTypeValidation,
			wantMsg:  "bad",
		},
		{
			name:     "wrapped app error is found",
			err:      fmt.Errorf("generate: %w", NewProviderError("Groq", 401, "nope")),
			wantType: ErrorTypeProvider,
			wantMsg:  "Groq API error 401",
		},
		{
			name:     "plain error is internal",
			err:      errors.New("dial tcp: timeout"),
			wantType: ErrorTypeInternal,
			wantMsg:  "dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			if got.Type != tt.wantType {
				t.Errorf("From() type = %v, want %v", got.Type, tt.wantType)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("From() message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}

	if From(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
