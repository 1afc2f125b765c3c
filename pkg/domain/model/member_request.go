package model

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MemberRequest is the input of an add or remove operation
type MemberRequest struct {
	Action    types.MemberAction `validate:"required"`
	ProjectID types.ProjectID    `validate:"required"`
	UserID    types.UserID       `validate:"required"`
	Username  string             `validate:"required_if=Action remove"`
}

// Validate checks that every reference the action needs is present
func (r *MemberRequest) Validate() error {
	if !r.Action.IsValid() {
		return goerr.New("unknown member action",
			goerr.V("action", r.Action),
			goerr.T(ErrTagMissingInput))
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return goerr.Wrap(err, "failed to validate member request", goerr.T(ErrTagMissingInput))
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		missing = append(missing, fieldErr.Field())
	}

	return goerr.New("missing data for member "+r.Action.String(),
		goerr.V("missing", missing),
		goerr.V("project_id", r.ProjectID),
		goerr.V("user_id", r.UserID),
		goerr.T(ErrTagMissingInput))
}
