package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, email, passwordHash string) error
	TouchLastLoginFunc func(ctx context.Context, id uint) error
	AddMediaFunc       func(ctx context.Context, item *domain.MediaItem) error
	ListMediaFunc      func(ctx context.Context, userID uint) ([]domain.MediaItem, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success, assign an id
	user.ID = 1
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies a partial profile update
func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdatePassword replaces the stored password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, passwordHash)
	}
	// Default behavior: success
	return nil
}

// TouchLastLogin stamps the user's last login time
func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	if m.TouchLastLoginFunc != nil {
		return m.TouchLastLoginFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// AddMedia appends a media item to the user's gallery
func (m *MockUserRepository) AddMedia(ctx context.Context, item *domain.MediaItem) error {
	if m.AddMediaFunc != nil {
		return m.AddMediaFunc(ctx, item)
	}
	// Default behavior: success
	return nil
}

// ListMedia lists the user's media items
func (m *MockUserRepository) ListMedia(ctx context.Context, userID uint) ([]domain.MediaItem, error) {
	if m.ListMediaFunc != nil {
		return m.ListMediaFunc(ctx, userID)
	}
	// Default behavior: empty gallery
	return []domain.MediaItem{}, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
