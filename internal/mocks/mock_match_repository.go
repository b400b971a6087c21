package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockMatchRepository implements domain.MatchRepository interface for testing
type MockMatchRepository struct {
	CreateFunc            func(ctx context.Context, match *domain.Match) error
	FindByIDFunc          func(ctx context.Context, id uint) (*domain.Match, error)
	ListFunc              func(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error)
	ListByUserFunc        func(ctx context.Context, userID uint) ([]domain.Match, error)
	ListJoinedFunc        func(ctx context.Context, userID uint) ([]domain.Match, error)
	UpdateFunc            func(ctx context.Context, id uint, update domain.MatchUpdate) (*domain.Match, error)
	DeleteFunc            func(ctx context.Context, id uint) error
	AddParticipantFunc    func(ctx context.Context, matchID, userID uint) error
	RemoveParticipantFunc func(ctx context.Context, matchID, userID uint) error
}

// NewMockMatchRepository creates a new MockMatchRepository with default behaviors
func NewMockMatchRepository() *MockMatchRepository {
	return &MockMatchRepository{}
}

// Create creates a new match
func (m *MockMatchRepository) Create(ctx context.Context, match *domain.Match) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, match)
	}
	// Default behavior: success, assign an id
	match.ID = 1
	return nil
}

// FindByID finds a match by ID
func (m *MockMatchRepository) FindByID(ctx context.Context, id uint) (*domain.Match, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrMatchNotFound
}

// List lists matches matching the filter
func (m *MockMatchRepository) List(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty list
	return []domain.Match{}, nil
}

// ListByUser lists matches the user created or joined
func (m *MockMatchRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Match, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty list
	return []domain.Match{}, nil
}

// ListJoined lists matches the user joined but did not create
func (m *MockMatchRepository) ListJoined(ctx context.Context, userID uint) ([]domain.Match, error) {
	if m.ListJoinedFunc != nil {
		return m.ListJoinedFunc(ctx, userID)
	}
	// Default behavior: empty list
	return []domain.Match{}, nil
}

// Update applies a partial match update
func (m *MockMatchRepository) Update(ctx context.Context, id uint, update domain.MatchUpdate) (*domain.Match, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	// Default behavior: not found
	return nil, domain.ErrMatchNotFound
}

// Delete removes a match and its participant rows
func (m *MockMatchRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// AddParticipant atomically adds a participant
func (m *MockMatchRepository) AddParticipant(ctx context.Context, matchID, userID uint) error {
	if m.AddParticipantFunc != nil {
		return m.AddParticipantFunc(ctx, matchID, userID)
	}
	// Default behavior: success
	return nil
}

// RemoveParticipant removes a participant
func (m *MockMatchRepository) RemoveParticipant(ctx context.Context, matchID, userID uint) error {
	if m.RemoveParticipantFunc != nil {
		return m.RemoveParticipantFunc(ctx, matchID, userID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.MatchRepository = (*MockMatchRepository)(nil)
