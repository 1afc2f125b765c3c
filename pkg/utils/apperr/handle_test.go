package apperr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/utils/apperr"
)

func TestCategory(t *testing.T) {
	gt.Equal(t, "missing_input", apperr.Category(goerr.New("x", goerr.T(model.ErrTagMissingInput))))
	gt.Equal(t, "auth", apperr.Category(goerr.Wrap(model.ErrReauthFailed, "x", goerr.T(model.ErrTagAuth))))
	gt.Equal(t, "transport", apperr.Category(goerr.Wrap(errors.New("refused"), "x", goerr.T(model.ErrTagTransport))))
	gt.Equal(t, "application", apperr.Category(goerr.New("x", goerr.T(model.ErrTagApplication))))
	gt.Equal(t, "internal", apperr.Category(errors.New("x")))
}

func TestDescribe(t *testing.T) {
	gt.Equal(t, "", apperr.Describe(nil))
	gt.Equal(t, "not logged in", apperr.Describe(goerr.Wrap(model.ErrNotAuthenticated, "cannot call API")))
	gt.Equal(t, "session expired, please log in again", apperr.Describe(goerr.Wrap(model.ErrReauthFailed, "cannot call API")))
	gt.Equal(t, "anti-forgery token not available", apperr.Describe(model.ErrCSRFUnavailable))

	wrapped := goerr.Wrap(goerr.Wrap(errors.New("connection refused"), "request failed"), "failed to load users")
	gt.Equal(t, "connection refused", apperr.Describe(wrapped))
}

func TestHandle(t *testing.T) {
	// Handle never panics, even without a logger in the context
	apperr.Handle(context.Background(), nil)
	apperr.Handle(context.Background(), goerr.New("x", goerr.T(model.ErrTagMissingInput)))
	apperr.Handle(context.Background(), errors.New("boom"))
}
