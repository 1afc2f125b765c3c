package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/taskflow/memberctl/pkg/utils/apperr"
)

// Projects implements ProjectsUseCase
type Projects struct {
	creds    *Credentials
	client   interfaces.TaskflowClient
	prompter interfaces.Prompter
}

var _ ProjectsUseCase = (*Projects)(nil)

// NewProjects creates a new Projects use case
func NewProjects(creds *Credentials, client interfaces.TaskflowClient, prompter interfaces.Prompter) *Projects {
	return &Projects{
		creds:    creds,
		client:   client,
		prompter: prompter,
	}
}

// Get fetches the project with its owner and members
func (p *Projects) Get(ctx context.Context, projectID types.ProjectID) (*model.Project, error) {
	if projectID == "" {
		return nil, goerr.New("project is not specified", goerr.T(model.ErrTagMissingInput))
	}

	resp, err := p.creds.authorized(ctx, func(ctx context.Context, token string) (*model.APIResponse, error) {
		return p.client.GetProject(ctx, token, projectID)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get project", goerr.V("project", projectID))
	}
	if !resp.OK() {
		return nil, goerr.New("failed to get project",
			goerr.V("project", projectID),
			goerr.V("status", resp.StatusCode),
			goerr.V("reason", resp.FailureText()),
			goerr.T(model.ErrTagTransport),
		)
	}

	var project model.Project
	if err := json.Unmarshal(resp.Body, &project); err != nil {
		return nil, goerr.Wrap(err, "failed to decode project",
			goerr.V("project", projectID),
			goerr.T(model.ErrTagTransport),
		)
	}
	return &project, nil
}

// Delete submits the deletion form of the web front after the user
// confirms. The anti-forgery token is obtained from the web front first
// when no stored one exists.
func (p *Projects) Delete(ctx context.Context, projectID types.ProjectID) (model.Result, error) {
	logger := ctxlog.From(ctx)

	if projectID == "" {
		err := goerr.New("project is not specified", goerr.T(model.ErrTagMissingInput))
		return model.NewFailure("Error: Missing data to delete the project."), err
	}

	ok, err := p.prompter.Confirm(ctx, "Delete this project? This action cannot be undone.")
	if err != nil {
		return model.NewFailure(err.Error()), goerr.Wrap(err, "failed to confirm")
	}
	if !ok {
		logger.Debug("project deletion cancelled", "project", projectID)
		return model.ResultCancelled, nil
	}

	token := p.creds.Resolve(ctx, types.CredentialCSRF)
	if token == "" {
		if err := p.client.PrimeCSRF(ctx); err != nil {
			logger.Warn("failed to obtain anti-forgery token", "error", err)
		}
		token = p.creds.Resolve(ctx, types.CredentialCSRF)
	}
	if token == "" {
		err := goerr.Wrap(model.ErrCSRFUnavailable, "cannot delete project",
			goerr.V("project", projectID),
			goerr.T(model.ErrTagAuth),
		)
		return model.NewFailure("Error deleting project: " + apperr.Describe(err)), err
	}

	nav, err := p.client.DeleteProject(ctx, token, projectID)
	if err != nil {
		return model.NewFailure("Error deleting project: " + apperr.Describe(err)),
			goerr.Wrap(err, "failed to delete project", goerr.V("project", projectID))
	}

	if nav.StatusCode >= 400 {
		result := model.NewFailure(fmt.Sprintf("HTTP %d", nav.StatusCode))
		result.Navigation = nav
		return result, goerr.New("project deletion rejected",
			goerr.V("project", projectID),
			goerr.V("status", nav.StatusCode),
			goerr.V("location", nav.Location),
			goerr.T(model.ErrTagTransport),
		)
	}

	logger.Info("project deleted", "project", projectID, "location", nav.Location)
	result := model.NewSuccess("")
	result.Navigation = nav
	return result, nil
}
