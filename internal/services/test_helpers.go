package services

import (
	"testing"
	"time"

	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	storage domain.MediaStorage) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if storage == nil {
		storage = mocks.NewMockMediaStorage()
	}

	return NewAuthService(userRepo, passwordSvc, tokenSvc, storage, 168*time.Hour)
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password123",
		Mobile:       "1234567890",
		DOB:          time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		Location:     "Berlin",
	}
}

// createUpcomingMatch creates an upcoming match owned by user 1
func createUpcomingMatch(t *testing.T) *domain.Match {
	t.Helper()

	creator := domain.PublicUser{ID: 1, Name: "Test User", Email: "test@example.com"}
	return &domain.Match{
		ID:           1,
		Title:        "Friday Football",
		GameType:     "football",
		Date:         time.Now().Add(48 * time.Hour),
		Location:     "Berlin",
		MaxPlayers:   10,
		CreatedBy:    creator,
		Participants: []domain.PublicUser{creator},
		Status:       domain.MatchUpcoming,
	}
}

// createTeam creates a team owned by user 1 with one extra member
func createTeam(t *testing.T) *domain.Team {
	t.Helper()

	creator := domain.PublicUser{ID: 1, Name: "Test User", Email: "test@example.com"}
	member := domain.PublicUser{ID: 2, Name: "Other User", Email: "other@example.com"}
	return &domain.Team{
		ID:           1,
		Name:         "Weekend Squad",
		CreatedBy:    creator,
		Members:      []domain.PublicUser{creator, member},
		JoinRequests: []domain.PublicUser{},
	}
}

// validRegisterInput returns a registration input that passes every field rule
func validRegisterInput(t *testing.T) domain.RegisterInput {
	t.Helper()

	return domain.RegisterInput{
		Name:     "New User",
		Email:    "newuser@example.com",
		Password: "password123",
		Mobile:   "1234567890",
		DOB:      "1995-06-15",
		Location: "Berlin",
	}
}

// assertValidationField fails unless err is a ValidationError flagging field
func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()

	ve, ok := domain.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, found := ve.Fields[field]; !found {
		t.Errorf("expected validation error on field %q, got %v", field, ve.Fields)
	}
}
