package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockPasswordResetService implements domain.PasswordResetService interface for testing
type MockPasswordResetService struct {
	RequestCodeFunc func(ctx context.Context, email string) (bool, error)
	RedeemCodeFunc  func(ctx context.Context, email, code, newPassword string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService with default behaviors
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

// RequestCode issues a one-time code
func (m *MockPasswordResetService) RequestCode(ctx context.Context, email string) (bool, error) {
	if m.RequestCodeFunc != nil {
		return m.RequestCodeFunc(ctx, email)
	}
	// Default behavior: delivered
	return true, nil
}

// RedeemCode redeems a one-time code
func (m *MockPasswordResetService) RedeemCode(ctx context.Context, email, code, newPassword string) error {
	if m.RedeemCodeFunc != nil {
		return m.RedeemCodeFunc(ctx, email, code, newPassword)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PasswordResetService = (*MockPasswordResetService)(nil)
