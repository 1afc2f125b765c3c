package interfaces

//go:generate moq -out mocks/credential_mock.go -pkg mocks . CredentialStore

import (
	"context"

	"github.com/taskflow/memberctl/pkg/domain/types"
)

// CredentialStore holds named credentials. Get returns an empty string when
// the name is not present.
type CredentialStore interface {
	Get(ctx context.Context, name types.CredentialName) (string, error)
	Set(ctx context.Context, name types.CredentialName, value string) error
	Delete(ctx context.Context, name types.CredentialName) error
}
