package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Run("app_error_passes_through", func(t *testing.T) {
		wrapped := fmt.Errorf("record purchase: %w", ErrNoRuleConfigured)
		got := Resolve(wrapped)
		if got != ErrNoRuleConfigured {
			t.Errorf("expected sentinel, got %+v", got)
		}
	})

	t.Run("plain_error_becomes_internal", func(t *testing.T) {
		cause := stderrors.New("connection reset")
		got := Resolve(cause)
		if got.Code != "INTERNAL_ERROR" || got.StatusCode != http.StatusInternalServerError {
			t.Errorf("unexpected resolution %+v", got)
		}
		if !stderrors.Is(got, cause) {
			t.Error("expected cause to be kept as internal error")
		}
	})
}

func TestIs(t *testing.T) {
	err := Wrap(ErrPersistenceFailure, stderrors.New("disk full"))
	if !stderrors.Is(err, ErrPersistenceFailure) {
		t.Error("expected wrapped copy to match its sentinel")
	}
	if stderrors.Is(err, ErrInvalidInput) {
		t.Error("expected different codes not to match")
	}

	custom := WithMessage(ErrInvalidInput, "amount must be positive")
	if custom.Message != "amount must be positive" || !stderrors.Is(custom, ErrInvalidInput) {
		t.Errorf("unexpected custom error %+v", custom)
	}
}
