package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// Credentials resolves and renews credentials held in short-lived storage
// and cookie storage
type Credentials struct {
	session interfaces.CredentialStore
	cookie  interfaces.CredentialStore
	client  interfaces.TaskflowClient
}

var _ CredentialsUseCase = (*Credentials)(nil)

// NewCredentials creates a new Credentials use case
func NewCredentials(session, cookie interfaces.CredentialStore, client interfaces.TaskflowClient) *Credentials {
	return &Credentials{
		session: session,
		cookie:  cookie,
		client:  client,
	}
}

// Resolve returns the named credential. Read errors are logged and treated
// as absent.
func (c *Credentials) Resolve(ctx context.Context, name types.CredentialName) string {
	logger := ctxlog.From(ctx)

	for _, store := range []interfaces.CredentialStore{c.session, c.cookie} {
		if store == nil {
			continue
		}
		v, err := store.Get(ctx, name)
		if err != nil {
			logger.Warn("failed to read credential", "name", name, "error", err)
			continue
		}
		if v != "" {
			return v
		}
	}
	return ""
}

// Save writes the credential to both stores. Both writes are attempted
// even when the first fails.
func (c *Credentials) Save(ctx context.Context, name types.CredentialName, value string) error {
	var first error
	for _, store := range []interfaces.CredentialStore{c.session, c.cookie} {
		if store == nil {
			continue
		}
		if err := store.Set(ctx, name, value); err != nil && first == nil {
			first = goerr.Wrap(err, "failed to save credential", goerr.V("name", name))
		}
	}
	return first
}

// Forget removes the credential from both stores
func (c *Credentials) Forget(ctx context.Context, name types.CredentialName) error {
	var first error
	for _, store := range []interfaces.CredentialStore{c.session, c.cookie} {
		if store == nil {
			continue
		}
		if err := store.Delete(ctx, name); err != nil && first == nil {
			first = goerr.Wrap(err, "failed to delete credential", goerr.V("name", name))
		}
	}
	return first
}

// Refresh exchanges the refresh token for a new access token and stores
// it. It issues at most one request and returns an empty string when no
// new token could be obtained.
func (c *Credentials) Refresh(ctx context.Context) string {
	logger := ctxlog.From(ctx)

	refresh := c.Resolve(ctx, types.CredentialRefresh)
	if refresh == "" {
		logger.Debug("no refresh token available")
		return ""
	}

	resp, err := c.client.Refresh(ctx, refresh)
	if err != nil {
		logger.Warn("token refresh failed", "error", err)
		return ""
	}
	if !resp.OK() || resp.Payload == nil || resp.Payload.Access == "" {
		logger.Warn("token refresh rejected",
			"status", resp.StatusCode,
			"reason", resp.FailureText(),
		)
		return ""
	}

	access := resp.Payload.Access
	if err := c.Save(ctx, types.CredentialAccess, access); err != nil {
		logger.Warn("failed to store refreshed access token", "error", err)
	}
	if resp.Payload.Refresh != "" {
		if err := c.Save(ctx, types.CredentialRefresh, resp.Payload.Refresh); err != nil {
			logger.Warn("failed to store rotated refresh token", "error", err)
		}
	}

	if exp, ok := model.TokenExpiry(access); ok {
		logger.Debug("access token refreshed", "expiresIn", time.Until(exp).Round(time.Second))
	} else {
		logger.Debug("access token refreshed")
	}
	return access
}

// apiCall is a bearer-authenticated request
type apiCall func(ctx context.Context, accessToken string) (*model.APIResponse, error)

// authorized runs call with the stored access token. When the server
// answers 401 the token is refreshed and the call is retried exactly once.
func (c *Credentials) authorized(ctx context.Context, call apiCall) (*model.APIResponse, error) {
	logger := ctxlog.From(ctx)

	access := c.Resolve(ctx, types.CredentialAccess)
	if access == "" {
		return nil, goerr.Wrap(model.ErrNotAuthenticated, "cannot call API", goerr.T(model.ErrTagAuth))
	}

	resp, err := call(ctx, access)
	if err != nil {
		return nil, err
	}
	if !resp.Unauthorized() {
		return resp, nil
	}

	if exp, ok := model.TokenExpiry(access); ok {
		logger.Debug("access token rejected", "expiredAt", exp)
	}

	renewed := c.Refresh(ctx)
	if renewed == "" {
		return nil, goerr.Wrap(model.ErrReauthFailed, "cannot call API",
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagAuth),
		)
	}

	return call(ctx, renewed)
}
