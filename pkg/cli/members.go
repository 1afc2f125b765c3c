package cli

import (
	"context"

	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func projectFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "project",
		Aliases:     []string{"p"},
		Usage:       "Project ID",
		Sources:     cli.EnvVars("MEMBERCTL_PROJECT"),
		Destination: dst,
	}
}

func cmdMembers(env *environment) *cli.Command {
	return &cli.Command{
		Name:  "members",
		Usage: "Manage project members",
		Commands: []*cli.Command{
			cmdMembersList(env),
			cmdMembersAdd(env),
			cmdMembersRemove(env),
		},
	}
}

func cmdMembersList(env *environment) *cli.Command {
	var projectID, filter string

	return &cli.Command{
		Name:  "list",
		Usage: "List the users that can be added to the project",
		Flags: []cli.Flag{
			projectFlag(&projectID),
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "Show only users whose name, email or ID contains the text",
				Destination: &filter,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := newRuntime(ctx, env)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			return rt.page(types.ProjectID(projectID)).OpenAddMember(ctx, filter)
		},
	}
}

func cmdMembersAdd(env *environment) *cli.Command {
	var projectID, userID string

	return &cli.Command{
		Name:  "add",
		Usage: "Add a user to the project",
		Flags: []cli.Flag{
			projectFlag(&projectID),
			&cli.StringFlag{
				Name:        "user",
				Usage:       "User ID to add",
				Destination: &userID,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := newRuntime(ctx, env)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			_, err = rt.page(types.ProjectID(projectID)).AddMember(ctx, types.UserID(userID))
			return err
		},
	}
}

func cmdMembersRemove(env *environment) *cli.Command {
	var projectID, userID, username string

	return &cli.Command{
		Name:  "remove",
		Usage: "Remove a member from the project",
		Flags: []cli.Flag{
			projectFlag(&projectID),
			&cli.StringFlag{
				Name:        "user",
				Usage:       "User ID to remove",
				Destination: &userID,
			},
			&cli.StringFlag{
				Name:        "username",
				Usage:       "Name of the member, shown in the confirmation",
				Destination: &username,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := newRuntime(ctx, env)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			_, err = rt.page(types.ProjectID(projectID)).RemoveMember(ctx, types.UserID(userID), username)
			return err
		},
	}
}
