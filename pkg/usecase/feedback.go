package usecase

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/microcosm-cc/bluemonday"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// Feedback implements FeedbackUseCase
type Feedback struct {
	board     *model.Board
	session   interfaces.CredentialStore
	policy    *bluemonday.Policy
	afterFunc func(d time.Duration, f func())
}

var _ FeedbackUseCase = (*Feedback)(nil)

// FeedbackOption configures Feedback
type FeedbackOption func(*Feedback)

// WithBoard renders banners into an existing board
func WithBoard(board *model.Board) FeedbackOption {
	return func(f *Feedback) {
		f.board = board
	}
}

// WithAfterFunc replaces the timer used to dismiss banners
func WithAfterFunc(fn func(d time.Duration, f func())) FeedbackOption {
	return func(f *Feedback) {
		f.afterFunc = fn
	}
}

// NewFeedback creates a new Feedback use case. session keeps relayed
// messages across a reload.
func NewFeedback(session interfaces.CredentialStore, opts ...FeedbackOption) *Feedback {
	f := &Feedback{
		session: session,
		policy:  bluemonday.StrictPolicy(),
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.board == nil {
		f.board = model.NewBoard()
	}
	return f
}

// Board returns the banner container
func (f *Feedback) Board() *model.Board {
	return f.board
}

// Show places a banner on top of the board. Markup in message is removed.
func (f *Feedback) Show(ctx context.Context, severity types.Severity, message string) *model.Banner {
	if !severity.IsValid() {
		severity = types.SeverityInfo
	}
	banner := model.NewBanner(severity, f.sanitize(message))
	f.board.Prepend(banner)
	return banner
}

// Relay keeps message in short-lived storage for the next reload
func (f *Feedback) Relay(ctx context.Context, message string) error {
	if message == "" {
		return nil
	}
	return f.session.Set(ctx, types.CredentialProjectMessage, message)
}

// ShowRelayed shows the relayed message as a success banner that dismisses
// itself, and forgets it. It returns nil when nothing was relayed.
func (f *Feedback) ShowRelayed(ctx context.Context) *model.Banner {
	logger := ctxlog.From(ctx)

	message, err := f.session.Get(ctx, types.CredentialProjectMessage)
	if err != nil {
		logger.Warn("failed to read relayed message", "error", err)
		return nil
	}
	if message == "" {
		return nil
	}
	if err := f.session.Delete(ctx, types.CredentialProjectMessage); err != nil {
		logger.Warn("failed to forget relayed message", "error", err)
	}

	banner := model.NewBanner(types.SeveritySuccess, f.sanitize(message))
	banner.DismissAfter = model.RelayedBannerLifetime
	f.board.Prepend(banner)

	f.afterFunc(banner.DismissAfter, func() {
		f.board.Dismiss(banner.ID)
	})
	return banner
}

func (f *Feedback) sanitize(message string) string {
	// StrictPolicy escapes what it keeps; banners are plain text
	return strings.TrimSpace(html.UnescapeString(f.policy.Sanitize(message)))
}
