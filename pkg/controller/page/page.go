package page

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/taskflow/memberctl/pkg/usecase"
	"github.com/taskflow/memberctl/pkg/utils/apperr"
)

// MessageSelectUser is shown when add is submitted without a selection
const MessageSelectUser = "Please select a user."

// Page wires user events of a project page to the use cases. One page
// serves one project for its whole lifetime.
type Page struct {
	projectID types.ProjectID
	members   usecase.MembersUseCase
	projects  usecase.ProjectsUseCase
	feedback  usecase.FeedbackUseCase
	renderer  interfaces.Renderer
	sel       *model.UserSelect
}

// New creates a page for the project
func New(projectID types.ProjectID, members usecase.MembersUseCase, projects usecase.ProjectsUseCase, feedback usecase.FeedbackUseCase, renderer interfaces.Renderer) *Page {
	return &Page{
		projectID: projectID,
		members:   members,
		projects:  projects,
		feedback:  feedback,
		renderer:  renderer,
		sel:       model.NewUserSelect(),
	}
}

// Select returns the user selection control of the add-member dialog
func (p *Page) Select() *model.UserSelect {
	return p.sel
}

// OpenAddMember loads the candidate users into the selection control and
// renders the options matching filter
func (p *Page) OpenAddMember(ctx context.Context, filter string) error {
	err := p.members.LoadUsers(ctx, p.projectID, p.sel)
	p.sel.Filter(filter)
	p.renderer.RenderSelect(p.sel)
	if err != nil {
		p.danger(ctx, "Error loading users: "+apperr.Describe(err))
		return err
	}
	return nil
}

// FilterUsers hides the options that do not match text
func (p *Page) FilterUsers(ctx context.Context, text string) {
	p.sel.Filter(text)
	p.renderer.RenderSelect(p.sel)
}

// SelectUser changes the selection of the control
func (p *Page) SelectUser(value string) {
	p.sel.Select(value)
}

// SubmitAdd adds the user selected in the control to the project
func (p *Page) SubmitAdd(ctx context.Context) (model.Result, error) {
	return p.AddMember(ctx, types.UserID(p.sel.Selected()))
}

// AddMember adds a user to the project
func (p *Page) AddMember(ctx context.Context, userID types.UserID) (model.Result, error) {
	if userID == "" {
		p.show(ctx, types.SeverityWarning, MessageSelectUser)
		return model.NewFailure(MessageSelectUser),
			goerr.New("no user selected", goerr.T(model.ErrTagMissingInput))
	}

	result, err := p.members.Add(ctx, model.MemberRequest{
		ProjectID: p.projectID,
		UserID:    userID,
	})
	return p.settle(ctx, result, err)
}

// RemoveMember removes a member from the project
func (p *Page) RemoveMember(ctx context.Context, userID types.UserID, username string) (model.Result, error) {
	result, err := p.members.Remove(ctx, model.MemberRequest{
		ProjectID: p.projectID,
		UserID:    userID,
		Username:  username,
	})
	return p.settle(ctx, result, err)
}

// DeleteProject deletes the project and shows the page it leads to
func (p *Page) DeleteProject(ctx context.Context) (model.Result, error) {
	result, err := p.projects.Delete(ctx, p.projectID)
	if result.Navigation != nil {
		p.renderer.RenderNavigation(result.Navigation)
	}
	if result.Outcome == model.OutcomeFailure {
		p.danger(ctx, result.Message)
	}
	return result, err
}

// Reload fetches the project again, renders it and shows the message
// relayed by the action that caused the reload
func (p *Page) Reload(ctx context.Context) (*model.Project, error) {
	project, err := p.projects.Get(ctx, p.projectID)
	if err != nil {
		p.danger(ctx, "Error loading project: "+apperr.Describe(err))
		return nil, err
	}

	p.renderer.RenderProject(project)
	if p.feedback.ShowRelayed(ctx) != nil {
		p.renderer.RenderBoard(p.feedback.Board())
	}
	return project, nil
}

// settle turns the result of a membership change into page feedback:
// success relays the message and reloads once, failure shows one banner
func (p *Page) settle(ctx context.Context, result model.Result, err error) (model.Result, error) {
	logger := ctxlog.From(ctx)

	switch result.Outcome {
	case model.OutcomeSuccess:
		if err := p.feedback.Relay(ctx, result.Message); err != nil {
			logger.Warn("failed to relay message", "error", err)
		}
		if _, err := p.Reload(ctx); err != nil {
			return result, err
		}
	case model.OutcomeFailure:
		p.danger(ctx, result.Message)
	}

	return result, err
}

func (p *Page) danger(ctx context.Context, message string) {
	p.show(ctx, types.SeverityDanger, message)
}

func (p *Page) show(ctx context.Context, severity types.Severity, message string) {
	p.feedback.Show(ctx, severity, message)
	p.renderer.RenderBoard(p.feedback.Board())
}
