package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

const (
	commandValidationCode   = "RICHTEXT_COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "RICHTEXT_COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "RICHTEXT_COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "RICHTEXT_COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "RICHTEXT_COMMAND_EXECUTION_FAILED"
)

// wrapValidationError tags message validation failures so callers can match
// them by category without knowing which command produced them. Errors that
// already carry a category pass through untouched.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "richtext command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "richtext command cancelled").
			WithTextCode(commandContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "richtext command deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "richtext command context error").
			WithTextCode(commandContextErrorCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "richtext command execution failed").
		WithTextCode(commandExecuteFailed)
}
