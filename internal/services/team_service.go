package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/you/playconnect/domain"
)

// TeamServiceImpl implements domain.TeamService
type TeamServiceImpl struct {
	teamRepo domain.TeamRepository
	userRepo domain.UserRepository
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo domain.TeamRepository, userRepo domain.UserRepository) domain.TeamService {
	return &TeamServiceImpl{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// Create implements domain.TeamService
func (s *TeamServiceImpl) Create(ctx context.Context, actorID uint, name, description string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError().Add("name", "is required")
	}

	creator, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	team := &domain.Team{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedBy:   creator.Public(),
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.teamRepo.FindByID(ctx, team.ID)
}

// Get implements domain.TeamService
func (s *TeamServiceImpl) Get(ctx context.Context, id uint) (*domain.Team, error) {
	return s.teamRepo.FindByID(ctx, id)
}

// RequestJoin implements domain.TeamService
func (s *TeamServiceImpl) RequestJoin(ctx context.Context, actorID, teamID uint) (*domain.Team, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	if err := s.teamRepo.AddJoinRequest(ctx, teamID, actorID); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, teamID)
}

// ApproveRequest implements domain.TeamService: moves the target from the
// pending requests to the member set.
func (s *TeamServiceImpl) ApproveRequest(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy.ID != actorID {
		return nil, domain.ErrTeamNotOwner
	}

	if err := s.teamRepo.ApproveJoinRequest(ctx, teamID, targetID); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, teamID)
}

// RejectRequest implements domain.TeamService: discards the pending request.
func (s *TeamServiceImpl) RejectRequest(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy.ID != actorID {
		return nil, domain.ErrTeamNotOwner
	}

	if err := s.teamRepo.RemoveJoinRequest(ctx, teamID, targetID); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, teamID)
}

// RemoveMember implements domain.TeamService: creator-only moderation; the
// creator can never be removed.
func (s *TeamServiceImpl) RemoveMember(ctx context.Context, actorID, teamID, targetID uint) (*domain.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy.ID != actorID {
		return nil, domain.ErrTeamNotOwner
	}
	if targetID == team.CreatedBy.ID {
		return nil, domain.ErrTeamOwnerRemove
	}

	if err := s.teamRepo.RemoveMember(ctx, teamID, targetID); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, teamID)
}

// Leave implements domain.TeamService: removes the actor from the team they
// belong to. The creator cannot leave their own team.
func (s *TeamServiceImpl) Leave(ctx context.Context, actorID uint) (*domain.Team, error) {
	team, err := s.teamRepo.FindByMember(ctx, actorID)
	if err != nil {
		if err == domain.ErrTeamNotFound {
			return nil, domain.ErrNoTeamMembership
		}
		return nil, err
	}
	if team.CreatedBy.ID == actorID {
		return nil, domain.ErrTeamOwnerLeave
	}

	if err := s.teamRepo.RemoveMember(ctx, team.ID, actorID); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, team.ID)
}
