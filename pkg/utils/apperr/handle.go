package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/model"
)

// Handle logs an error that ended a command. Input errors are the user's
// to fix and are logged as warnings.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if goerr.HasTag(err, model.ErrTagMissingInput) {
		logger.Warn("invalid input", "error", err)
		return
	}
	logger.Error("application error", "error", err, "category", Category(err))
}

// Category returns the name of the error tag attached to err, or
// "internal" when none is
func Category(err error) string {
	switch {
	case goerr.HasTag(err, model.ErrTagMissingInput):
		return "missing_input"
	case goerr.HasTag(err, model.ErrTagAuth):
		return "auth"
	case goerr.HasTag(err, model.ErrTagTransport):
		return "transport"
	case goerr.HasTag(err, model.ErrTagApplication):
		return "application"
	}
	return "internal"
}

// Describe returns the text shown to the user for a failure
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrNotAuthenticated):
		return "not logged in"
	case errors.Is(err, model.ErrReauthFailed):
		return "session expired, please log in again"
	case errors.Is(err, model.ErrCSRFUnavailable):
		return "anti-forgery token not available"
	}

	// The root cause carries the most specific text
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(err) {
		err = cause
	}
	return err.Error()
}
