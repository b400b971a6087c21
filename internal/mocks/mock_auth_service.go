package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	// Default behavior: return a mock result
	return &domain.AuthResult{
		User:  &domain.User{ID: 1, Name: input.Name, Email: input.Email},
		Token: "mock_token",
	}, nil
}

// Login logs a user in
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: return a mock result
	return &domain.AuthResult{
		User:  &domain.User{ID: 1, Email: email},
		Token: "mock_token",
	}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
