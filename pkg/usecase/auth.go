package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// Auth implements AuthUseCase
type Auth struct {
	creds  *Credentials
	client interfaces.TaskflowClient
}

var _ AuthUseCase = (*Auth)(nil)

// NewAuth creates a new Auth use case
func NewAuth(creds *Credentials, client interfaces.TaskflowClient) *Auth {
	return &Auth{
		creds:  creds,
		client: client,
	}
}

// Login exchanges a username and password for a token pair and saves the
// pair to both stores
func (a *Auth) Login(ctx context.Context, username, password string) (*model.Member, error) {
	logger := ctxlog.From(ctx)

	if username == "" || password == "" {
		return nil, goerr.New("username and password are required", goerr.T(model.ErrTagMissingInput))
	}

	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to log in", goerr.V("username", username))
	}
	if !resp.OK() || resp.Payload == nil {
		return nil, goerr.New("login rejected",
			goerr.V("username", username),
			goerr.V("status", resp.StatusCode),
			goerr.V("reason", resp.FailureText()),
			goerr.T(model.ErrTagAuth),
		)
	}

	pair := model.TokenPair{Access: resp.Payload.Access, Refresh: resp.Payload.Refresh}
	if !pair.IsValid() {
		return nil, goerr.New("login response has no token pair",
			goerr.V("username", username),
			goerr.T(model.ErrTagAuth),
		)
	}

	if err := a.creds.Save(ctx, types.CredentialAccess, pair.Access); err != nil {
		return nil, err
	}
	if err := a.creds.Save(ctx, types.CredentialRefresh, pair.Refresh); err != nil {
		return nil, err
	}

	user := resp.Payload.User
	if user == nil {
		user = &model.Member{Username: username}
	}
	logger.Info("logged in", "username", user.Username, "userID", user.ID)
	return user, nil
}

// Logout removes the token pair from both stores
func (a *Auth) Logout(ctx context.Context) error {
	if err := a.creds.Forget(ctx, types.CredentialAccess); err != nil {
		return err
	}
	return a.creds.Forget(ctx, types.CredentialRefresh)
}
