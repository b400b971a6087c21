package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockMatchService implements domain.MatchService interface for testing
type MockMatchService struct {
	CreateFunc     func(ctx context.Context, actorID uint, input domain.CreateMatchInput) (*domain.Match, error)
	GetFunc        func(ctx context.Context, id uint) (*domain.Match, error)
	ListFunc       func(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error)
	ListMineFunc   func(ctx context.Context, actorID uint) ([]domain.Match, error)
	ListJoinedFunc func(ctx context.Context, actorID uint) ([]domain.Match, error)
	UpdateFunc     func(ctx context.Context, actorID, id uint, input domain.UpdateMatchInput) (*domain.Match, error)
	DeleteFunc     func(ctx context.Context, actorID, id uint) error
}

// NewMockMatchService creates a new MockMatchService with default behaviors
func NewMockMatchService() *MockMatchService {
	return &MockMatchService{}
}

// Create creates a match
func (m *MockMatchService) Create(ctx context.Context, actorID uint, input domain.CreateMatchInput) (*domain.Match, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actorID, input)
	}
	// Default behavior: echo the input back
	return &domain.Match{ID: 1, Title: input.Title, Status: domain.MatchUpcoming}, nil
}

// Get fetches a match
func (m *MockMatchService) Get(ctx context.Context, id uint) (*domain.Match, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrMatchNotFound
}

// List lists matches
func (m *MockMatchService) List(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty list
	return []domain.Match{}, nil
}

// ListMine lists the caller's matches
func (m *MockMatchService) ListMine(ctx context.Context, actorID uint) ([]domain.Match, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, actorID)
	}
	// Default behavior: empty list
	return []domain.Match{}, nil
}

// ListJoined lists matches the caller joined
func (m *MockMatchService) ListJoined(ctx context.Context, actorID uint) ([]domain.Match, error) {
	if m.ListJoinedFunc != nil {
		return m.ListJoinedFunc(ctx, actorID)
	}
	// Default behavior: empty list
	return []domain.Match{}, nil
}

// Update updates a match
func (m *MockMatchService) Update(ctx context.Context, actorID, id uint, input domain.UpdateMatchInput) (*domain.Match, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actorID, id, input)
	}
	// Default behavior: not found
	return nil, domain.ErrMatchNotFound
}

// Delete deletes a match
func (m *MockMatchService) Delete(ctx context.Context, actorID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actorID, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.MatchService = (*MockMatchService)(nil)
