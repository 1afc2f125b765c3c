package cli

import (
	"context"
	"time"

	"github.com/taskflow/memberctl/pkg/cli/config"
	"github.com/taskflow/memberctl/pkg/controller/page"
	"github.com/taskflow/memberctl/pkg/controller/term"
	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/taskflow/memberctl/pkg/usecase"
	"github.com/taskflow/memberctl/pkg/utils/async"
)

// runtime is the object graph a command works with
type runtime struct {
	stores   *config.Stores
	auth     *usecase.Auth
	members  *usecase.Members
	projects *usecase.Projects
	feedback *usecase.Feedback
	renderer *term.Renderer
}

func newRuntime(ctx context.Context, env *environment) (*runtime, error) {
	stores, err := env.store.Configure(ctx, env.api.WebURL)
	if err != nil {
		return nil, err
	}

	client, err := env.api.Configure(stores.Cookie.Jar())
	if err != nil {
		stores.Close(ctx)
		return nil, err
	}

	prompter := env.prompt.Configure()
	creds := usecase.NewCredentials(stores.Session, stores.Cookie, client)
	return &runtime{
		stores:   stores,
		auth:     usecase.NewAuth(creds, client),
		members:  usecase.NewMembers(creds, client, prompter, usecase.WithSuccessMarkers(env.api.SuccessMarkers...)),
		projects: usecase.NewProjects(creds, client, prompter),
		feedback: usecase.NewFeedback(stores.Session, usecase.WithAfterFunc(func(d time.Duration, fn func()) {
			async.After(ctx, d, func(context.Context) error {
				fn()
				return nil
			})
		})),
		renderer: term.NewRenderer(env.out),
	}, nil
}

func (r *runtime) page(projectID types.ProjectID) *page.Page {
	return page.New(projectID, r.members, r.projects, r.feedback, r.renderer)
}

func (r *runtime) close(ctx context.Context) {
	r.stores.Close(ctx)
}
