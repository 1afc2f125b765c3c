package cli

import (
	"context"

	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdProject(env *environment) *cli.Command {
	return &cli.Command{
		Name:  "project",
		Usage: "Show or delete a project",
		Commands: []*cli.Command{
			cmdProjectShow(env),
			cmdProjectDelete(env),
		},
	}
}

func cmdProjectShow(env *environment) *cli.Command {
	var projectID string

	return &cli.Command{
		Name:  "show",
		Usage: "Show the project and its members",
		Flags: []cli.Flag{projectFlag(&projectID)},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := newRuntime(ctx, env)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			_, err = rt.page(types.ProjectID(projectID)).Reload(ctx)
			return err
		},
	}
}

func cmdProjectDelete(env *environment) *cli.Command {
	var projectID string

	return &cli.Command{
		Name:  "delete",
		Usage: "Delete the project through the web front",
		Flags: []cli.Flag{projectFlag(&projectID)},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := newRuntime(ctx, env)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			_, err = rt.page(types.ProjectID(projectID)).DeleteProject(ctx)
			return err
		},
	}
}
