package testutil

import (
	"errors"
	"testing"

	apperrors "moneyharbor/internal/errors"
)

// AssertAppError checks that err carries the same code and HTTP status as
// want. Wrapped errors and WithMessage copies match their sentinel.
func AssertAppError(t *testing.T, err error, want *apperrors.AppError) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got nil", want.Code)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected %s, got %T: %v", want.Code, err, err)
	}

	if appErr.Code != want.Code {
		t.Errorf("expected error code %q, got %q (message: %s)", want.Code, appErr.Code, appErr.Message)
	}
	if appErr.StatusCode != want.StatusCode {
		t.Errorf("expected status %d for %s, got %d", want.StatusCode, want.Code, appErr.StatusCode)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
