package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/cli/config"
	"github.com/taskflow/memberctl/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// environment carries the global configuration to subcommands
type environment struct {
	logger config.Logger
	api    config.API
	store  config.Store
	prompt config.Prompt

	out    io.Writer
	cancel context.CancelFunc
}

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, &environment{out: os.Stdout})
}

func run(ctx context.Context, args []string, env *environment) error {
	app := &cli.Command{
		Name:    "memberctl",
		Usage:   "Manage TaskFlow project members from the terminal",
		Version: "0.1.0",
		Writer:  env.out,
		Flags: joinFlags(
			env.logger.Flags(),
			env.api.Flags(),
			env.store.Flags(),
			env.prompt.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := env.logger.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			if err := env.api.Resolve(); err != nil {
				return nil, err
			}
			logger.Debug("configuration loaded",
				slog.Any("logger", env.logger),
				slog.Any("api", env.api),
				slog.Any("store", env.store),
				slog.Any("prompt", env.prompt),
			)

			if env.api.Timeout > 0 {
				ctx, env.cancel = context.WithTimeout(ctx, env.api.Timeout)
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if env.cancel != nil {
				env.cancel()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdLogin(env),
			cmdLogout(env),
			cmdMembers(env),
			cmdProject(env),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctx, err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

func joinFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}
