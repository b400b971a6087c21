package services

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MembershipServiceImpl implements domain.MembershipService. The capacity
// and uniqueness invariants live in the repository's atomic participant
// writes; this layer enforces lifecycle and creator-immunity rules.
type MembershipServiceImpl struct {
	matchRepo domain.MatchRepository
}

// NewMembershipService creates a new membership service
func NewMembershipService(matchRepo domain.MatchRepository) domain.MembershipService {
	return &MembershipServiceImpl{matchRepo: matchRepo}
}

// Join implements domain.MembershipService
func (s *MembershipServiceImpl) Join(ctx context.Context, actorID, matchID uint) (*domain.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != domain.MatchUpcoming {
		return nil, domain.ErrMatchNotUpcoming
	}

	if err := s.matchRepo.AddParticipant(ctx, matchID, actorID); err != nil {
		return nil, err
	}

	return s.matchRepo.FindByID(ctx, matchID)
}

// Leave implements domain.MembershipService
func (s *MembershipServiceImpl) Leave(ctx context.Context, actorID, matchID uint) (*domain.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.CreatedBy.ID == actorID {
		return nil, domain.ErrCreatorLeave
	}

	if err := s.matchRepo.RemoveParticipant(ctx, matchID, actorID); err != nil {
		return nil, err
	}

	return s.matchRepo.FindByID(ctx, matchID)
}

// Participants implements domain.MembershipService
func (s *MembershipServiceImpl) Participants(ctx context.Context, matchID uint) ([]domain.PublicUser, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return match.Participants, nil
}

// RemoveParticipant implements domain.MembershipService: creator-only
// moderation, and the creator can never remove themselves this way.
func (s *MembershipServiceImpl) RemoveParticipant(ctx context.Context, actorID, matchID, targetID uint) error {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.CreatedBy.ID != actorID {
		return domain.ErrMatchNotOwner
	}
	if targetID == match.CreatedBy.ID {
		return domain.ErrCreatorRemove
	}

	if err := s.matchRepo.RemoveParticipant(ctx, matchID, targetID); err != nil {
		if err == domain.ErrNotJoined {
			return domain.ErrParticipantNotFound
		}
		return err
	}
	return nil
}
