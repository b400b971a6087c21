package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockResetCodeStore implements domain.ResetCodeStore interface for testing
type MockResetCodeStore struct {
	PutFunc     func(ctx context.Context, email, code string) error
	ConsumeFunc func(ctx context.Context, email, code string) error
}

// NewMockResetCodeStore creates a new MockResetCodeStore with default behaviors
func NewMockResetCodeStore() *MockResetCodeStore {
	return &MockResetCodeStore{}
}

// Put stores a one-time code
func (m *MockResetCodeStore) Put(ctx context.Context, email, code string) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// Consume redeems a one-time code
func (m *MockResetCodeStore) Consume(ctx context.Context, email, code string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, email, code)
	}
	// Default behavior: no code stored
	return domain.ErrResetCodeInvalid
}

// Compile-time interface compliance verification
var _ domain.ResetCodeStore = (*MockResetCodeStore)(nil)
