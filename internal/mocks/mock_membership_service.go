package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockMembershipService implements domain.MembershipService interface for testing
type MockMembershipService struct {
	JoinFunc              func(ctx context.Context, actorID, matchID uint) (*domain.Match, error)
	LeaveFunc             func(ctx context.Context, actorID, matchID uint) (*domain.Match, error)
	ParticipantsFunc      func(ctx context.Context, matchID uint) ([]domain.PublicUser, error)
	RemoveParticipantFunc func(ctx context.Context, actorID, matchID, targetID uint) error
}

// NewMockMembershipService creates a new MockMembershipService with default behaviors
func NewMockMembershipService() *MockMembershipService {
	return &MockMembershipService{}
}

// Join joins a match
func (m *MockMembershipService) Join(ctx context.Context, actorID, matchID uint) (*domain.Match, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, actorID, matchID)
	}
	// Default behavior: empty refreshed match
	return &domain.Match{ID: matchID, Status: domain.MatchUpcoming}, nil
}

// Leave leaves a match
func (m *MockMembershipService) Leave(ctx context.Context, actorID, matchID uint) (*domain.Match, error) {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, actorID, matchID)
	}
	// Default behavior: empty refreshed match
	return &domain.Match{ID: matchID, Status: domain.MatchUpcoming}, nil
}

// Participants lists a match's participants
func (m *MockMembershipService) Participants(ctx context.Context, matchID uint) ([]domain.PublicUser, error) {
	if m.ParticipantsFunc != nil {
		return m.ParticipantsFunc(ctx, matchID)
	}
	// Default behavior: empty set
	return []domain.PublicUser{}, nil
}

// RemoveParticipant removes a participant
func (m *MockMembershipService) RemoveParticipant(ctx context.Context, actorID, matchID, targetID uint) error {
	if m.RemoveParticipantFunc != nil {
		return m.RemoveParticipantFunc(ctx, actorID, matchID, targetID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.MembershipService = (*MockMembershipService)(nil)
