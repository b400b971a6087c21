package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/you/playconnect/domain"
)

const defaultMaxPlayers = 10

// MatchServiceImpl implements domain.MatchService
type MatchServiceImpl struct {
	matchRepo domain.MatchRepository
	userRepo  domain.UserRepository
}

// NewMatchService creates a new match service
func NewMatchService(matchRepo domain.MatchRepository, userRepo domain.UserRepository) domain.MatchService {
	return &MatchServiceImpl{
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// Create implements domain.MatchService
func (s *MatchServiceImpl) Create(ctx context.Context, actorID uint, input domain.CreateMatchInput) (*domain.Match, error) {
	title := strings.TrimSpace(input.Title)
	gameType := strings.TrimSpace(input.GameType)
	dateRaw := strings.TrimSpace(input.Date)
	location := strings.TrimSpace(input.Location)

	ve := domain.NewValidationError()
	if title == "" {
		ve.Add("title", "is required")
	}
	if gameType == "" {
		ve.Add("gameType", "is required")
	}
	if location == "" {
		ve.Add("location", "is required")
	}

	var date time.Time
	if dateRaw == "" {
		ve.Add("date", "is required")
	} else if parsed, ok := parseDate(dateRaw); !ok {
		ve.Add("date", "must be a valid date")
	} else {
		date = parsed
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = defaultMaxPlayers
	} else if maxPlayers < 2 {
		ve.Add("maxPlayers", "must be at least 2")
	}

	if ve.HasErrors() {
		return nil, ve
	}

	if !date.After(time.Now()) {
		return nil, domain.ErrDateNotFuture
	}

	creator, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	match := &domain.Match{
		Title:       title,
		GameType:    gameType,
		Date:        date,
		Location:    location,
		Description: input.Description,
		MaxPlayers:  maxPlayers,
		CreatedBy:   creator.Public(),
		Status:      domain.MatchUpcoming,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return s.matchRepo.FindByID(ctx, match.ID)
}

// Get implements domain.MatchService
func (s *MatchServiceImpl) Get(ctx context.Context, id uint) (*domain.Match, error) {
	return s.matchRepo.FindByID(ctx, id)
}

// List implements domain.MatchService
func (s *MatchServiceImpl) List(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	return s.matchRepo.List(ctx, filter)
}

// ListMine implements domain.MatchService
func (s *MatchServiceImpl) ListMine(ctx context.Context, actorID uint) ([]domain.Match, error) {
	return s.matchRepo.ListByUser(ctx, actorID)
}

// ListJoined implements domain.MatchService
func (s *MatchServiceImpl) ListJoined(ctx context.Context, actorID uint) ([]domain.Match, error) {
	return s.matchRepo.ListJoined(ctx, actorID)
}

// Update implements domain.MatchService. Only the creator may update, and a
// new date must still be strictly in the future.
func (s *MatchServiceImpl) Update(ctx context.Context, actorID, id uint, input domain.UpdateMatchInput) (*domain.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.CreatedBy.ID != actorID {
		return nil, domain.ErrMatchNotOwner
	}

	update := domain.MatchUpdate{
		Title:       input.Title,
		GameType:    input.GameType,
		Location:    input.Location,
		Description: input.Description,
	}

	if input.Date != nil {
		parsed, ok := parseDate(strings.TrimSpace(*input.Date))
		if !ok {
			return nil, domain.NewValidationError().Add("date", "must be a valid date")
		}
		if !parsed.After(time.Now()) {
			return nil, domain.ErrDateNotFuture
		}
		update.Date = &parsed
	}

	if input.MaxPlayers != nil {
		if *input.MaxPlayers < 2 {
			return nil, domain.NewValidationError().Add("maxPlayers", "must be at least 2")
		}
		update.MaxPlayers = input.MaxPlayers
	}

	return s.matchRepo.Update(ctx, id, update)
}

// Delete implements domain.MatchService
func (s *MatchServiceImpl) Delete(ctx context.Context, actorID, id uint) error {
	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if match.CreatedBy.ID != actorID {
		return domain.ErrMatchNotOwner
	}
	return s.matchRepo.Delete(ctx, id)
}
