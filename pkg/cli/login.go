package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/controller/term"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdLogin(env *environment) *cli.Command {
	var username, password string

	return &cli.Command{
		Name:  "login",
		Usage: "Log in and store the token pair",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u"},
				Usage:       "Account name",
				Sources:     cli.EnvVars("MEMBERCTL_USERNAME"),
				Destination: &username,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "Password; read from the terminal when omitted",
				Sources:     cli.EnvVars("MEMBERCTL_PASSWORD"),
				Destination: &password,
				Hidden:      true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if username == "" {
				return goerr.New("username is required", goerr.T(model.ErrTagMissingInput))
			}
			if password == "" {
				p, err := term.ReadPassword(os.Stderr, "Password: ", "")
				if err != nil {
					return err
				}
				password = p
			}

			rt, err := newRuntime(ctx, env)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			user, err := rt.auth.Login(ctx, username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(env.out, "Logged in as %s\n", user.Username)
			return nil
		},
	}
}

func cmdLogout(env *environment) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the stored token pair",
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := newRuntime(ctx, env)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			return rt.auth.Logout(ctx)
		},
	}
}
