package async

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
)

// After runs handler once d has elapsed, on a context detached from ctx's
// cancellation. Panics and errors are logged. The returned timer can stop
// it before it fires.
func After(ctx context.Context, d time.Duration, handler func(ctx context.Context) error) *time.Timer {
	newCtx := newBackgroundContext(ctx)
	return time.AfterFunc(d, func() {
		run(newCtx, handler)
	})
}

func run(ctx context.Context, handler func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic in async handler",
				"recover", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := handler(ctx); err != nil {
		ctxlog.From(ctx).Error("Error in async handler", "error", err)
	}
}

// newBackgroundContext keeps the logger of ctx
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	return newCtx
}
