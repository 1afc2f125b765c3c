package usecase

import (
	"context"

	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// CredentialsUseCase defines credential lookup and renewal
type CredentialsUseCase interface {
	// Resolve returns the credential from short-lived storage, then cookie
	// storage, or an empty string
	Resolve(ctx context.Context, name types.CredentialName) string

	// Refresh obtains a new access token, returning an empty string on failure
	Refresh(ctx context.Context) string

	// Save writes the credential to both stores
	Save(ctx context.Context, name types.CredentialName, value string) error
}

// MembersUseCase defines project membership operations
type MembersUseCase interface {
	// LoadUsers populates the selection control with the users that can be
	// added to the project
	LoadUsers(ctx context.Context, projectID types.ProjectID, sel *model.UserSelect) error

	// Add adds a user to the project after confirmation
	Add(ctx context.Context, req model.MemberRequest) (model.Result, error)

	// Remove removes a user from the project after confirmation
	Remove(ctx context.Context, req model.MemberRequest) (model.Result, error)
}

// ProjectsUseCase defines project operations
type ProjectsUseCase interface {
	// Get fetches the project with its members
	Get(ctx context.Context, projectID types.ProjectID) (*model.Project, error)

	// Delete deletes the project through the web front after confirmation
	Delete(ctx context.Context, projectID types.ProjectID) (model.Result, error)
}

// FeedbackUseCase defines banner rendering
type FeedbackUseCase interface {
	// Board returns the banner container
	Board() *model.Board

	// Show places a banner on top of the board
	Show(ctx context.Context, severity types.Severity, message string) *model.Banner

	// Relay keeps a success message for the next reload
	Relay(ctx context.Context, message string) error

	// ShowRelayed shows the relayed message, if any, and forgets it
	ShowRelayed(ctx context.Context) *model.Banner
}

// AuthUseCase defines authentication operations
type AuthUseCase interface {
	// Login exchanges credentials for a token pair and stores it
	Login(ctx context.Context, username, password string) (*model.Member, error)

	// Logout forgets the stored token pair
	Logout(ctx context.Context) error
}
