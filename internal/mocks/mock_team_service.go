package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockTeamService implements domain.TeamService interface for testing
type MockTeamService struct {
	CreateFunc         func(ctx context.Context, actorID uint, name, description string) (*domain.Team, error)
	GetFunc            func(ctx context.Context, id uint) (*domain.Team, error)
	RequestJoinFunc    func(ctx context.Context, actorID, teamID uint) (*domain.Team, error)
	ApproveRequestFunc func(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error)
	RejectRequestFunc  func(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error)
	RemoveMemberFunc   func(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error)
	LeaveFunc          func(ctx context.Context, actorID uint) (*domain.Team, error)
}

// NewMockTeamService creates a new MockTeamService with default behaviors
func NewMockTeamService() *MockTeamService {
	return &MockTeamService{}
}

// Create creates a team
func (m *MockTeamService) Create(ctx context.Context, actorID uint, name, description string) (*domain.Team, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actorID, name, description)
	}
	// Default behavior: echo the input back
	return &domain.Team{ID: 1, Name: name, Description: description}, nil
}

// Get fetches a team
func (m *MockTeamService) Get(ctx context.Context, id uint) (*domain.Team, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTeamNotFound
}

// RequestJoin records a join request
func (m *MockTeamService) RequestJoin(ctx context.Context, actorID, teamID uint) (*domain.Team, error) {
	if m.RequestJoinFunc != nil {
		return m.RequestJoinFunc(ctx, actorID, teamID)
	}
	// Default behavior: empty team
	return &domain.Team{ID: teamID}, nil
}

// ApproveRequest approves a join request
func (m *MockTeamService) ApproveRequest(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error) {
	if m.ApproveRequestFunc != nil {
		return m.ApproveRequestFunc(ctx, actorID, teamID, targetID)
	}
	// Default behavior: empty team
	return &domain.Team{ID: teamID}, nil
}

// RejectRequest rejects a join request
func (m *MockTeamService) RejectRequest(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error) {
	if m.RejectRequestFunc != nil {
		return m.RejectRequestFunc(ctx, actorID, teamID, targetID)
	}
	// Default behavior: empty team
	return &domain.Team{ID: teamID}, nil
}

// RemoveMember removes a member
func (m *MockTeamService) RemoveMember(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error) {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, actorID, teamID, targetID)
	}
	// Default behavior: empty team
	return &domain.Team{ID: teamID}, nil
}

// Leave removes the caller from their team
func (m *MockTeamService) Leave(ctx context.Context, actorID uint) (*domain.Team, error) {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, actorID)
	}
	// Default behavior: empty team
	return &domain.Team{ID: 1}, nil
}

// Compile-time interface compliance verification
var _ domain.TeamService = (*MockTeamService)(nil)
