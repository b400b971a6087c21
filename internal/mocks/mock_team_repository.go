package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockTeamRepository implements domain.TeamRepository interface for testing
type MockTeamRepository struct {
	CreateFunc             func(ctx context.Context, team *domain.Team) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Team, error)
	FindByMemberFunc       func(ctx context.Context, userID uint) (*domain.Team, error)
	AddJoinRequestFunc     func(ctx context.Context, teamID, userID uint) error
	ApproveJoinRequestFunc func(ctx context.Context, teamID, userID uint) error
	RemoveJoinRequestFunc  func(ctx context.Context, teamID, userID uint) error
	RemoveMemberFunc       func(ctx context.Context, teamID, userID uint) error
}

// NewMockTeamRepository creates a new MockTeamRepository with default behaviors
func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{}
}

// Create creates a new team
func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	// Default behavior: success, assign an id
	team.ID = 1
	return nil
}

// FindByID finds a team by ID
func (m *MockTeamRepository) FindByID(ctx context.Context, id uint) (*domain.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTeamNotFound
}

// FindByMember finds the team a user belongs to
func (m *MockTeamRepository) FindByMember(ctx context.Context, userID uint) (*domain.Team, error) {
	if m.FindByMemberFunc != nil {
		return m.FindByMemberFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrTeamNotFound
}

// AddJoinRequest atomically records a pending join request
func (m *MockTeamRepository) AddJoinRequest(ctx context.Context, teamID, userID uint) error {
	if m.AddJoinRequestFunc != nil {
		return m.AddJoinRequestFunc(ctx, teamID, userID)
	}
	// Default behavior: success
	return nil
}

// ApproveJoinRequest promotes a pending request to membership
func (m *MockTeamRepository) ApproveJoinRequest(ctx context.Context, teamID, userID uint) error {
	if m.ApproveJoinRequestFunc != nil {
		return m.ApproveJoinRequestFunc(ctx, teamID, userID)
	}
	// Default behavior: success
	return nil
}

// RemoveJoinRequest discards a pending request
func (m *MockTeamRepository) RemoveJoinRequest(ctx context.Context, teamID, userID uint) error {
	if m.RemoveJoinRequestFunc != nil {
		return m.RemoveJoinRequestFunc(ctx, teamID, userID)
	}
	// Default behavior: success
	return nil
}

// RemoveMember removes a member row
func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID, userID uint) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, teamID, userID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.TeamRepository = (*MockTeamRepository)(nil)
