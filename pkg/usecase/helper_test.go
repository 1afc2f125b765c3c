package usecase_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/taskflow/memberctl/pkg/domain/interfaces/mocks"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/taskflow/memberctl/pkg/repository"
	"github.com/taskflow/memberctl/pkg/usecase"
)

func newContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.With(context.Background(), logger)
}

func boolPtr(v bool) *bool {
	return &v
}

func jsonResponse(status int, payload *model.Payload) *model.APIResponse {
	return &model.APIResponse{StatusCode: status, Payload: payload}
}

type fixture struct {
	session *repository.Memory
	cookie  *repository.Memory
	client  *mocks.TaskflowClientMock
	creds   *usecase.Credentials
}

// newFixture prepares stores holding access and refresh tokens and a
// client whose refresh endpoint issues "renewed-access"
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		session: repository.NewMemory(),
		cookie:  repository.NewMemory(),
		client: &mocks.TaskflowClientMock{
			RefreshFunc: func(ctx context.Context, refreshToken string) (*model.APIResponse, error) {
				return jsonResponse(200, &model.Payload{Access: "renewed-access"}), nil
			},
		},
	}
	gt.NoError(t, f.session.Set(ctx, types.CredentialAccess, "stale-access"))
	gt.NoError(t, f.cookie.Set(ctx, types.CredentialRefresh, "refresh-token"))
	f.creds = usecase.NewCredentials(f.session, f.cookie, f.client)
	return f
}

func confirmAll(answer bool) *mocks.PrompterMock {
	return &mocks.PrompterMock{
		ConfirmFunc: func(ctx context.Context, message string) (bool, error) {
			return answer, nil
		},
	}
}
