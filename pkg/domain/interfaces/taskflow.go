package interfaces

//go:generate moq -out mocks/taskflow_mock.go -pkg mocks . TaskflowClient

import (
	"context"

	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// TaskflowClient is the transport to the TaskFlow backend. Methods return
// an error only when no HTTP response was received; status handling is left
// to the caller.
type TaskflowClient interface {
	// Auth endpoints
	Login(ctx context.Context, username, password string) (*model.APIResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.APIResponse, error)

	// Bearer-authenticated API endpoints
	ListCandidates(ctx context.Context, accessToken string, projectID types.ProjectID) (*model.APIResponse, error)
	AddMember(ctx context.Context, accessToken string, projectID types.ProjectID, userID types.UserID) (*model.APIResponse, error)
	RemoveMember(ctx context.Context, accessToken string, projectID types.ProjectID, userID types.UserID) (*model.APIResponse, error)
	GetProject(ctx context.Context, accessToken string, projectID types.ProjectID) (*model.APIResponse, error)

	// Web front form endpoints, authenticated by cookie and anti-forgery token
	PrimeCSRF(ctx context.Context) error
	DeleteProject(ctx context.Context, csrfToken string, projectID types.ProjectID) (*model.Navigation, error)
}
