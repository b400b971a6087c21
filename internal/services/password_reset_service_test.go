package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/mocks"
)

func createResetServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	codeStore domain.ResetCodeStore,
	passwordSvc domain.PasswordService,
	mailerSvc domain.MailerService) domain.PasswordResetService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if codeStore == nil {
		codeStore = mocks.NewMockResetCodeStore()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if mailerSvc == nil {
		mailerSvc = mocks.NewMockMailerService()
	}

	return NewPasswordResetService(userRepo, codeStore, passwordSvc, mailerSvc, 6)
}

func TestPasswordResetServiceImpl_RequestCode(t *testing.T) {
	tests := []struct {
		name              string
		email             string
		setupMocks        func(*mocks.MockUserRepository, *mocks.MockResetCodeStore, *mocks.MockMailerService)
		expectedError     error
		expectedDelivered bool
	}{
		{
			name:  "code generated stored and mailed",
			email: "test@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, store *mocks.MockResetCodeStore, mailer *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				store.PutFunc = func(ctx context.Context, email, code string) error {
					if !regexp.MustCompile(`^[0-9]{6}$`).MatchString(code) {
						t.Errorf("expected 6-digit code, got %q", code)
					}
					return nil
				}
				mailer.SendResetCodeFunc = func(to, code string) error {
					if to != "test@example.com" {
						t.Errorf("mail sent to %q", to)
					}
					return nil
				}
			},
			expectedDelivered: true,
		},
		{
			name:  "unknown email is reported",
			email: "missing@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, store *mocks.MockResetCodeStore, mailer *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:  "delivery failure degrades but code stays valid",
			email: "test@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, store *mocks.MockResetCodeStore, mailer *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				mailer.SendResetCodeFunc = func(to, code string) error {
					return errors.New("smtp unreachable")
				}
			},
			expectedDelivered: false,
		},
		{
			name:  "store failure aborts the flow",
			email: "test@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, store *mocks.MockResetCodeStore, mailer *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				store.PutFunc = func(ctx context.Context, email, code string) error {
					return errors.New("redis down")
				}
				mailer.SendResetCodeFunc = func(to, code string) error {
					t.Error("mail should not be sent when the store write fails")
					return nil
				}
			},
			expectedError: errors.New("redis down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			store := mocks.NewMockResetCodeStore()
			mailer := mocks.NewMockMailerService()

			tt.setupMocks(userRepo, store, mailer)

			svc := createResetServiceForTest(t, userRepo, store, nil, mailer)

			delivered, err := svc.RequestCode(context.Background(), tt.email)

			if tt.expectedError != nil {
				if err == nil || err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if delivered != tt.expectedDelivered {
				t.Errorf("expected delivered=%v, got %v", tt.expectedDelivered, delivered)
			}
		})
	}
}

func TestPasswordResetServiceImpl_RedeemCode(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		code          string
		newPassword   string
		setupMocks    func(*mocks.MockResetCodeStore, *mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:        "valid code updates the password",
			email:       "test@example.com",
			code:        "123456",
			newPassword: "fresh123",
			setupMocks: func(store *mocks.MockResetCodeStore, userRepo *mocks.MockUserRepository) {
				store.ConsumeFunc = func(ctx context.Context, email, code string) error {
					if email != "test@example.com" || code != "123456" {
						t.Errorf("unexpected consume args %q %q", email, code)
					}
					return nil
				}
				userRepo.UpdatePasswordFunc = func(ctx context.Context, email, passwordHash string) error {
					if passwordHash != "hashed_fresh123" {
						t.Errorf("unexpected hash %q", passwordHash)
					}
					return nil
				}
			},
		},
		{
			name:        "wrong code is rejected",
			email:       "test@example.com",
			code:        "000000",
			newPassword: "fresh123",
			setupMocks: func(store *mocks.MockResetCodeStore, userRepo *mocks.MockUserRepository) {
				store.ConsumeFunc = func(ctx context.Context, email, code string) error {
					return domain.ErrResetCodeInvalid
				}
				userRepo.UpdatePasswordFunc = func(ctx context.Context, email, passwordHash string) error {
					t.Error("password must not change for a wrong code")
					return nil
				}
			},
			expectedError: domain.ErrResetCodeInvalid,
		},
		{
			name:        "weak new password is rejected before the store is touched",
			email:       "test@example.com",
			code:        "123456",
			newPassword: "short",
			setupMocks: func(store *mocks.MockResetCodeStore, userRepo *mocks.MockUserRepository) {
				store.ConsumeFunc = func(ctx context.Context, email, code string) error {
					t.Error("store must not be consumed for invalid input")
					return nil
				}
			},
			expectedError: domain.NewValidationError().Add("newPassword", "weak"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockResetCodeStore()
			userRepo := mocks.NewMockUserRepository()

			tt.setupMocks(store, userRepo)

			svc := createResetServiceForTest(t, userRepo, store, nil, nil)

			err := svc.RedeemCode(context.Background(), tt.email, tt.code, tt.newPassword)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if _, isVE := domain.AsValidation(tt.expectedError); isVE {
					if _, ok := domain.AsValidation(err); !ok {
						t.Fatalf("expected validation error, got %v", err)
					}
				} else if !errors.Is(err, tt.expectedError) {
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

// A consumed code cannot be redeemed a second time.
func TestPasswordResetServiceImpl_RedeemCode_SingleUse(t *testing.T) {
	consumed := false
	store := mocks.NewMockResetCodeStore()
	store.ConsumeFunc = func(ctx context.Context, email, code string) error {
		if consumed {
			return domain.ErrResetCodeInvalid
		}
		consumed = true
		return nil
	}

	svc := createResetServiceForTest(t, nil, store, nil, nil)

	if err := svc.RedeemCode(context.Background(), "test@example.com", "123456", "fresh123"); err != nil {
		t.Fatalf("first redemption failed: %v", err)
	}
	err := svc.RedeemCode(context.Background(), "test@example.com", "123456", "other456")
	if !errors.Is(err, domain.ErrResetCodeInvalid) {
		t.Fatalf("expected ErrResetCodeInvalid on second redemption, got %v", err)
	}
}
