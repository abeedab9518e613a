package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestWrapValidationErrorKeepsCause(t *testing.T) {
	cause := errors.New("title required")
	err := wrapValidationError(cause)

	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped error to keep its cause")
	}
	if !strings.Contains(err.Error(), "richtext command validation failed") {
		t.Fatalf("unexpected wrap message: %v", err)
	}
}

func TestWrapContextErrorDistinguishesCancelAndDeadline(t *testing.T) {
	cancelled := wrapContextError(context.Canceled)
	if !errors.Is(cancelled, context.Canceled) {
		t.Fatalf("expected context.Canceled cause, got %v", cancelled)
	}
	if !strings.Contains(cancelled.Error(), "richtext command cancelled") {
		t.Fatalf("unexpected cancellation message: %v", cancelled)
	}

	expired := wrapContextError(context.DeadlineExceeded)
	if !errors.Is(expired, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded cause, got %v", expired)
	}
	if !strings.Contains(expired.Error(), "richtext command deadline exceeded") {
		t.Fatalf("unexpected deadline message: %v", expired)
	}

	for _, err := range []error{cancelled, expired} {
		if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
			t.Fatalf("expected command category, got %v", err)
		}
	}
}

func TestWrapHelpersPassThroughWrappedErrors(t *testing.T) {
	already := goerrors.Wrap(errors.New("boom"), goerrors.CategoryCommand, "already tagged")

	if got := wrapExecuteError(already); !errors.Is(got, already) {
		t.Fatalf("expected wrapped error to pass through, got %v", got)
	}
	if got := wrapContextError(already); !errors.Is(got, already) {
		t.Fatalf("expected wrapped context error to pass through, got %v", got)
	}
	if wrapValidationError(nil) != nil || wrapExecuteError(nil) != nil || wrapContextError(nil) != nil {
		t.Fatal("nil errors must stay nil")
	}
}
