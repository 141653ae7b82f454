package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusBadRequest)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("database connection failed")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "resource not found",
			},
			expected: "NOT_FOUND: resource not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("database connection failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: database connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	unwrapped := errors.Unwrap(appErr)
	if unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestBookingRejectionStatuses(t *testing.T) {
	tests := []struct {
		name       string
		appErr     *AppError
		wantCode   string
		wantStatus int
	}{
		{"closed day", ClosedDay("no Sunday bookings"), CodeClosedDay, http.StatusBadRequest},
		{"invalid range", InvalidRange("start must be before end"), CodeInvalidRange, http.StatusBadRequest},
		{"conflict", Conflict("slot taken"), CodeConflict, http.StatusBadRequest},
		{"storage", Internal("insert failed", errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.appErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", tt.appErr.Code, tt.wantCode)
			}
			if tt.appErr.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.appErr.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("slot taken")
	if got := AsAppError(appErr); got != appErr {
		t.Errorf("AsAppError should return the same *AppError")
	}

	plain := errors.New("boom")
	converted := AsAppError(plain)
	if converted.Code != CodeInternal {
		t.Errorf("plain errors should convert to %s, got %s", CodeInternal, converted.Code)
	}
	if !errors.Is(converted, plain) {
		t.Errorf("converted error should wrap the original")
	}
}
