package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/taskflow/memberctl/pkg/usecase"
)

func TestAuthLogin(t *testing.T) {
	ctx := newContext()

	t.Run("stores the token pair in both stores", func(t *testing.T) {
		f := newFixture(t)
		f.client.LoginFunc = func(ctx context.Context, username, password string) (*model.APIResponse, error) {
			return jsonResponse(200, &model.Payload{
				Access:  "login-access",
				Refresh: "login-refresh",
				User:    &model.Member{ID: "1", Username: username, Email: "admin@example.com"},
			}), nil
		}
		auth := usecase.NewAuth(f.creds, f.client)

		user, err := auth.Login(ctx, "admin", "secret")
		gt.NoError(t, err).Required()
		gt.Equal(t, "admin", user.Username)

		for _, store := range []interface {
			Get(context.Context, types.CredentialName) (string, error)
		}{f.session, f.cookie} {
			access, err := store.Get(ctx, types.CredentialAccess)
			gt.NoError(t, err)
			gt.Equal(t, "login-access", access)
			refresh, err := store.Get(ctx, types.CredentialRefresh)
			gt.NoError(t, err)
			gt.Equal(t, "login-refresh", refresh)
		}

		call := f.client.LoginCalls()[0]
		gt.Equal(t, "admin", call.Username)
		gt.Equal(t, "secret", call.Password)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		f := newFixture(t)
		f.client.LoginFunc = func(ctx context.Context, username, password string) (*model.APIResponse, error) {
			return jsonResponse(400, &model.Payload{Error: "Credenciales inválidas"}), nil
		}
		auth := usecase.NewAuth(f.creds, f.client)

		_, err := auth.Login(ctx, "admin", "wrong")
		gt.B(t, goerr.HasTag(err, model.ErrTagAuth)).True()
		gt.Equal(t, "stale-access", f.creds.Resolve(ctx, types.CredentialAccess))
	})

	t.Run("response without tokens", func(t *testing.T) {
		f := newFixture(t)
		f.client.LoginFunc = func(ctx context.Context, username, password string) (*model.APIResponse, error) {
			return jsonResponse(200, &model.Payload{Access: "only-access"}), nil
		}
		auth := usecase.NewAuth(f.creds, f.client)

		_, err := auth.Login(ctx, "admin", "secret")
		gt.B(t, goerr.HasTag(err, model.ErrTagAuth)).True()
	})

	t.Run("missing input", func(t *testing.T) {
		f := newFixture(t)
		auth := usecase.NewAuth(f.creds, f.client)

		_, err := auth.Login(ctx, "admin", "")
		gt.B(t, goerr.HasTag(err, model.ErrTagMissingInput)).True()
		gt.A(t, f.client.LoginCalls()).Length(0)
	})
}

func TestAuthLogout(t *testing.T) {
	ctx := newContext()
	f := newFixture(t)
	auth := usecase.NewAuth(f.creds, f.client)

	gt.NoError(t, auth.Logout(ctx))
	gt.Equal(t, "", f.creds.Resolve(ctx, types.CredentialAccess))
	gt.Equal(t, "", f.creds.Resolve(ctx, types.CredentialRefresh))
}
