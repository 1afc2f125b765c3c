package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// Memory implements CredentialStore with in-memory storage. It plays the
// role of short-lived storage: values vanish with the process.
type Memory struct {
	mu     sync.RWMutex
	values map[types.CredentialName]string
}

// NewMemory creates a new memory credential store
func NewMemory() *Memory {
	return &Memory{
		values: make(map[types.CredentialName]string),
	}
}

// Get returns the value stored under name, or an empty string
func (m *Memory) Get(ctx context.Context, name types.CredentialName) (string, error) {
	if name == "" {
		return "", goerr.New("credential name is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.values[name], nil
}

// Set stores value under name. An empty value removes the entry.
func (m *Memory) Set(ctx context.Context, name types.CredentialName, value string) error {
	if name == "" {
		return goerr.New("credential name is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if value == "" {
		delete(m.values, name)
		return nil
	}
	m.values[name] = value
	return nil
}

// Delete removes the value stored under name
func (m *Memory) Delete(ctx context.Context, name types.CredentialName) error {
	if name == "" {
		return goerr.New("credential name is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, name)
	return nil
}
