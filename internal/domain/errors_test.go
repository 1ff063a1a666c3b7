package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"title":     MsgRequired,
		"timeframe": "must be one of long, medium, short, task",
	}}

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(verr, ErrValidation) = false, want true")
	}

	msg := verr.Error()
	if !strings.Contains(msg, "title: is required") {
		t.Errorf("Error() = %q, want title detail", msg)
	}
	// Fields render in sorted order so messages are stable.
	if strings.Index(msg, "timeframe") > strings.Index(msg, "title") {
		t.Errorf("Error() = %q, want fields sorted", msg)
	}
}

func TestSystemError_WrapsSentinelAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	serr := &SystemError{Module: "finance-mod", Err: cause}

	if !errors.Is(serr, ErrSystem) {
		t.Error("errors.Is(serr, ErrSystem) = false, want true")
	}
	if !errors.Is(serr, cause) {
		t.Error("errors.Is(serr, cause) = false, want true")
	}

	var got *SystemError
	wrapped := fmt.Errorf("check aborted: %w", serr)
	if !errors.As(wrapped, &got) {
		t.Fatalf("errors.As(*SystemError) = false, got %T", wrapped)
	}
	if got.Module != "finance-mod" {
		t.Errorf("Module = %q, want finance-mod", got.Module)
	}
	if !strings.Contains(serr.Error(), "finance-mod") {
		t.Errorf("Error() = %q, want module name", serr.Error())
	}
}
