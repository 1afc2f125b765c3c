package config

import (
	"log/slog"

	"github.com/taskflow/memberctl/pkg/controller/term"
	"github.com/urfave/cli/v3"
)

// Prompt holds confirmation settings
type Prompt struct {
	AssumeYes bool
}

// Flags returns CLI flags for confirmation prompts
func (p *Prompt) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "Answer yes to every confirmation",
			Category:    "Prompt",
			Sources:     cli.EnvVars("MEMBERCTL_ASSUME_YES"),
			Destination: &p.AssumeYes,
		},
	}
}

// Configure creates the prompter
func (p *Prompt) Configure() *term.Prompter {
	return term.NewPrompter(term.WithAssumeYes(p.AssumeYes))
}

// LogValue returns structured log value
func (p Prompt) LogValue() slog.Value {
	return slog.GroupValue(slog.Bool("assume_yes", p.AssumeYes))
}
