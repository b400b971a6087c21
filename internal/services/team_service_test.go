package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/mocks"
)

func createTeamServiceForTest(t *testing.T, teamRepo domain.TeamRepository, userRepo domain.UserRepository) domain.TeamService {
	t.Helper()

	if teamRepo == nil {
		teamRepo = mocks.NewMockTeamRepository()
	}
	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	return NewTeamService(teamRepo, userRepo)
}

func TestTeamServiceImpl_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		teamRepo := mocks.NewMockTeamRepository()
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createValidUser(t), nil
		}
		var created *domain.Team
		teamRepo.CreateFunc = func(ctx context.Context, team *domain.Team) error {
			team.ID = 3
			created = team
			return nil
		}
		teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
			return created, nil
		}

		svc := createTeamServiceForTest(t, teamRepo, userRepo)
		team, err := svc.Create(context.Background(), 1, " Weekend Squad ", "casual games")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if team.Name != "Weekend Squad" {
			t.Errorf("expected trimmed name, got %q", team.Name)
		}
		if team.CreatedBy.ID != 1 {
			t.Errorf("expected creator 1, got %d", team.CreatedBy.ID)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		svc := createTeamServiceForTest(t, nil, nil)
		_, err := svc.Create(context.Background(), 1, "   ", "")
		assertValidationField(t, err, "name")
	})
}

func TestTeamServiceImpl_RequestJoin(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockTeamRepository)
		expectedError error
	}{
		{
			name: "request recorded",
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
				teamRepo.AddJoinRequestFunc = func(ctx context.Context, teamID, userID uint) error {
					if userID != 5 {
						t.Errorf("expected requester 5, got %d", userID)
					}
					return nil
				}
			},
		},
		{
			name: "duplicate request is rejected",
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
				teamRepo.AddJoinRequestFunc = func(ctx context.Context, teamID, userID uint) error {
					return domain.ErrAlreadyRequested
				}
			},
			expectedError: domain.ErrAlreadyRequested,
		},
		{
			name: "missing team",
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
					return nil, domain.ErrTeamNotFound
				}
			},
			expectedError: domain.ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamRepo := mocks.NewMockTeamRepository()
			tt.setupMocks(teamRepo)

			svc := createTeamServiceForTest(t, teamRepo, nil)

			_, err := svc.RequestJoin(context.Background(), 5, 1)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestTeamServiceImpl_ApproveRequest(t *testing.T) {
	tests := []struct {
		name          string
		actorID       uint
		setupMocks    func(*mocks.MockTeamRepository)
		expectedError error
	}{
		{
			name:    "owner approves",
			actorID: 1,
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
				teamRepo.ApproveJoinRequestFunc = func(ctx context.Context, teamID, userID uint) error {
					if userID != 5 {
						t.Errorf("expected target 5, got %d", userID)
					}
					return nil
				}
			},
		},
		{
			name:    "non-owner is rejected",
			actorID: 2,
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
				teamRepo.ApproveJoinRequestFunc = func(ctx context.Context, teamID, userID uint) error {
					t.Error("approve must not run for a non-owner")
					return nil
				}
			},
			expectedError: domain.ErrTeamNotOwner,
		},
		{
			name:    "no pending request",
			actorID: 1,
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
				teamRepo.ApproveJoinRequestFunc = func(ctx context.Context, teamID, userID uint) error {
					return domain.ErrNoPendingRequest
				}
			},
			expectedError: domain.ErrNoPendingRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamRepo := mocks.NewMockTeamRepository()
			tt.setupMocks(teamRepo)

			svc := createTeamServiceForTest(t, teamRepo, nil)

			_, err := svc.ApproveRequest(context.Background(), tt.actorID, 1, 5)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestTeamServiceImpl_RejectRequest(t *testing.T) {
	t.Run("owner rejects", func(t *testing.T) {
		teamRepo := mocks.NewMockTeamRepository()
		teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
			return createTeam(t), nil
		}
		removed := false
		teamRepo.RemoveJoinRequestFunc = func(ctx context.Context, teamID, userID uint) error {
			removed = true
			return nil
		}

		svc := createTeamServiceForTest(t, teamRepo, nil)
		if _, err := svc.RejectRequest(context.Background(), 1, 1, 5); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !removed {
			t.Error("expected the pending request to be removed")
		}
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		teamRepo := mocks.NewMockTeamRepository()
		teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
			return createTeam(t), nil
		}

		svc := createTeamServiceForTest(t, teamRepo, nil)
		if _, err := svc.RejectRequest(context.Background(), 2, 1, 5); !errors.Is(err, domain.ErrTeamNotOwner) {
			t.Fatalf("expected ErrTeamNotOwner, got %v", err)
		}
	})
}

func TestTeamServiceImpl_RemoveMember(t *testing.T) {
	tests := []struct {
		name          string
		actorID       uint
		targetID      uint
		expectedError error
	}{
		{"owner removes a member", 1, 2, nil},
		{"non-owner is rejected", 2, 3, domain.ErrTeamNotOwner},
		{"owner cannot remove themselves", 1, 1, domain.ErrTeamOwnerRemove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamRepo := mocks.NewMockTeamRepository()
			teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
				return createTeam(t), nil
			}

			svc := createTeamServiceForTest(t, teamRepo, nil)

			_, err := svc.RemoveMember(context.Background(), tt.actorID, 1, tt.targetID)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestTeamServiceImpl_Leave(t *testing.T) {
	tests := []struct {
		name          string
		actorID       uint
		setupMocks    func(*mocks.MockTeamRepository)
		expectedError error
	}{
		{
			name:    "member leaves",
			actorID: 2,
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByMemberFunc = func(ctx context.Context, userID uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
				teamRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
			},
		},
		{
			name:    "owner cannot leave",
			actorID: 1,
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByMemberFunc = func(ctx context.Context, userID uint) (*domain.Team, error) {
					return createTeam(t), nil
				}
				teamRepo.RemoveMemberFunc = func(ctx context.Context, teamID, userID uint) error {
					t.Error("owner must never be removed")
					return nil
				}
			},
			expectedError: domain.ErrTeamOwnerLeave,
		},
		{
			name:    "no membership",
			actorID: 9,
			setupMocks: func(teamRepo *mocks.MockTeamRepository) {
				teamRepo.FindByMemberFunc = func(ctx context.Context, userID uint) (*domain.Team, error) {
					return nil, domain.ErrTeamNotFound
				}
			},
			expectedError: domain.ErrNoTeamMembership,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamRepo := mocks.NewMockTeamRepository()
			tt.setupMocks(teamRepo)

			svc := createTeamServiceForTest(t, teamRepo, nil)

			_, err := svc.Leave(context.Background(), tt.actorID)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
