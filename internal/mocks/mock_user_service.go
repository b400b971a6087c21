package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	GetProfileFunc    func(ctx context.Context, userID uint) (*domain.Profile, error)
	UpdateProfileFunc func(ctx context.Context, userID uint, input domain.UpdateProfileInput) (*domain.Profile, error)
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// GetProfile returns a profile
func (m *MockUserService) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	// Default behavior: minimal profile
	return &domain.Profile{ID: userID, Email: "user@example.com"}, nil
}

// UpdateProfile updates a profile
func (m *MockUserService) UpdateProfile(ctx context.Context, userID uint, input domain.UpdateProfileInput) (*domain.Profile, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, input)
	}
	// Default behavior: minimal profile
	return &domain.Profile{ID: userID, Email: "user@example.com"}, nil
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
