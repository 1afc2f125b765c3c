package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/taskflow/memberctl/pkg/utils/apperr"
	"golang.org/x/sync/singleflight"
)

// DefaultSuccessMarkers are the message fragments the backend uses to
// report a successful membership change
var DefaultSuccessMarkers = []string{"exitosamente", "successfully"}

// Members implements MembersUseCase
type Members struct {
	creds    *Credentials
	client   interfaces.TaskflowClient
	prompter interfaces.Prompter
	markers  []string
	inflight singleflight.Group
}

var _ MembersUseCase = (*Members)(nil)

// MembersOption configures Members
type MembersOption func(*Members)

// WithSuccessMarkers replaces the success markers. An empty list keeps the
// defaults.
func WithSuccessMarkers(markers ...string) MembersOption {
	return func(m *Members) {
		if len(markers) > 0 {
			m.markers = markers
		}
	}
}

// NewMembers creates a new Members use case
func NewMembers(creds *Credentials, client interfaces.TaskflowClient, prompter interfaces.Prompter, opts ...MembersOption) *Members {
	m := &Members{
		creds:    creds,
		client:   client,
		prompter: prompter,
		markers:  DefaultSuccessMarkers,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadUsers fills sel with the users that can be added to the project.
// The control shows a loading placeholder while the request is in flight.
// When no credential is usable, the control stays in that state and an
// error tagged as auth is returned.
func (m *Members) LoadUsers(ctx context.Context, projectID types.ProjectID, sel *model.UserSelect) error {
	logger := ctxlog.From(ctx)
	sel.Reset(model.LabelLoading)

	if projectID == "" {
		return goerr.New("project is not specified", goerr.T(model.ErrTagMissingInput))
	}

	resp, err := m.creds.authorized(ctx, func(ctx context.Context, token string) (*model.APIResponse, error) {
		return m.client.ListCandidates(ctx, token, projectID)
	})
	if goerr.HasTag(err, model.ErrTagAuth) {
		logger.Warn("cannot load users without a valid credential", "project", projectID, "error", err)
		return goerr.Wrap(err, "failed to load users", goerr.V("project", projectID))
	}
	if err != nil {
		sel.ShowError(model.LabelConnectionError)
		return goerr.Wrap(err, "failed to load users", goerr.V("project", projectID), goerr.T(model.ErrTagTransport))
	}

	if !resp.OK() || resp.Payload == nil {
		sel.ShowError(model.LabelConnectionError)
		return goerr.New("failed to load users",
			goerr.V("project", projectID),
			goerr.V("status", resp.StatusCode),
			goerr.V("reason", resp.FailureText()),
			goerr.T(model.ErrTagTransport),
		)
	}

	if !resp.Payload.Succeeded() {
		reason := resp.Payload.ErrorText()
		if reason == "" {
			reason = model.LabelUnknownError
		}
		sel.ShowError("Error: " + reason)
		logger.Info("server refused to list users", "project", projectID, "reason", reason)
		return nil
	}

	sel.Populate(resp.Payload.Users)
	logger.Debug("users loaded", "project", projectID, "count", len(resp.Payload.Users))
	return nil
}

// Add adds the user to the project after the user confirms
func (m *Members) Add(ctx context.Context, req model.MemberRequest) (model.Result, error) {
	req.Action = types.MemberActionAdd
	return m.mutate(ctx, req, "Add this member to the project?")
}

// Remove removes the user from the project after the user confirms
func (m *Members) Remove(ctx context.Context, req model.MemberRequest) (model.Result, error) {
	req.Action = types.MemberActionRemove
	return m.mutate(ctx, req, fmt.Sprintf("Remove %s from the project?", req.Username))
}

func (m *Members) mutate(ctx context.Context, req model.MemberRequest, question string) (model.Result, error) {
	if err := req.Validate(); err != nil {
		return model.NewFailure(fmt.Sprintf("Error: Missing data to %s the member.", req.Action)), err
	}

	ok, err := m.prompter.Confirm(ctx, question)
	if err != nil {
		return model.NewFailure(err.Error()), goerr.Wrap(err, "failed to confirm")
	}
	if !ok {
		ctxlog.From(ctx).Debug("member change cancelled", "action", req.Action, "user", req.UserID)
		return model.ResultCancelled, nil
	}

	key := fmt.Sprintf("%s:%s:%s", req.Action, req.ProjectID, req.UserID)
	// The shared request outlives any single caller's cancellation
	shared := context.WithoutCancel(ctx)
	ch := m.inflight.DoChan(key, func() (any, error) {
		result, err := m.submitMutation(shared, req)
		return &mutationOutcome{result: result, err: err}, nil
	})

	select {
	case <-ctx.Done():
		err := goerr.Wrap(ctx.Err(), "member change abandoned", goerr.V("key", key))
		return model.NewFailure(fmt.Sprintf("Error %s member: %s", verbs[req.Action], ctx.Err())), err
	case res := <-ch:
		if res.Err != nil {
			return model.NewFailure(res.Err.Error()), res.Err
		}
		if res.Shared {
			ctxlog.From(ctx).Debug("member change coalesced", "key", key)
		}
		out := res.Val.(*mutationOutcome)
		return out.result, out.err
	}
}

var verbs = map[types.MemberAction]string{
	types.MemberActionAdd:    "adding",
	types.MemberActionRemove: "removing",
}

type mutationOutcome struct {
	result model.Result
	err    error
}

// submitMutation sends an add or remove request, refreshing the access
// token once on 401, and interprets the response
func (m *Members) submitMutation(ctx context.Context, req model.MemberRequest) (model.Result, error) {
	logger := ctxlog.From(ctx)
	verb := verbs[req.Action]

	resp, err := m.creds.authorized(ctx, func(ctx context.Context, token string) (*model.APIResponse, error) {
		if req.Action == types.MemberActionRemove {
			return m.client.RemoveMember(ctx, token, req.ProjectID, req.UserID)
		}
		return m.client.AddMember(ctx, token, req.ProjectID, req.UserID)
	})
	if err != nil {
		msg := fmt.Sprintf("Error %s member: %s", verb, apperr.Describe(err))
		return model.NewFailure(msg), goerr.Wrap(err, "member change failed",
			goerr.V("action", req.Action),
			goerr.V("project", req.ProjectID),
			goerr.V("user", req.UserID),
		)
	}

	if resp.OK() && (resp.Payload.Succeeded() || resp.Payload.HasMarker(m.markers)) {
		logger.Info("member changed",
			"action", req.Action,
			"project", req.ProjectID,
			"user", req.UserID,
		)
		return model.NewSuccess(resp.Payload.Message), nil
	}

	tag := model.ErrTagApplication
	if !resp.OK() {
		tag = model.ErrTagTransport
	}
	reason := resp.FailureText()
	return model.NewFailure(reason), goerr.New("member change rejected",
		goerr.V("action", req.Action),
		goerr.V("project", req.ProjectID),
		goerr.V("user", req.UserID),
		goerr.V("status", resp.StatusCode),
		goerr.V("reason", reason),
		goerr.T(tag),
	)
}
