package cli

import (
	"context"
	"io"
)

// RunWithOutput runs the application writing rendered output to out
func RunWithOutput(ctx context.Context, args []string, out io.Writer) error {
	return run(ctx, args, &environment{out: out})
}
