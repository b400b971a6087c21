package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/mocks"
)

func TestUserServiceImpl_GetProfile(t *testing.T) {
	t.Run("returns redacted profile", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createValidUser(t), nil
		}

		svc := NewUserService(userRepo)
		profile, err := svc.GetProfile(context.Background(), 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if profile.Email != "test@example.com" {
			t.Errorf("expected email test@example.com, got %s", profile.Email)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		svc := NewUserService(mocks.NewMockUserRepository())
		if _, err := svc.GetProfile(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserServiceImpl_UpdateProfile(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name           string
		input          domain.UpdateProfileInput
		expectedField  string
		validateUpdate func(t *testing.T, update domain.ProfileUpdate)
	}{
		{
			name:  "supplied fields are passed through trimmed",
			input: domain.UpdateProfileInput{Name: strPtr(" New Name "), Location: strPtr("Hamburg")},
			validateUpdate: func(t *testing.T, update domain.ProfileUpdate) {
				if update.Name == nil || *update.Name != "New Name" {
					t.Errorf("expected trimmed name, got %v", update.Name)
				}
				if update.Location == nil || *update.Location != "Hamburg" {
					t.Errorf("expected location Hamburg, got %v", update.Location)
				}
				if update.Mobile != nil || update.DOB != nil {
					t.Error("absent fields should stay nil")
				}
			},
		},
		{
			name:  "dob is parsed",
			input: domain.UpdateProfileInput{DOB: strPtr("1990-03-20")},
			validateUpdate: func(t *testing.T, update domain.ProfileUpdate) {
				if update.DOB == nil {
					t.Fatal("expected dob to be set")
				}
				if update.DOB.Year() != 1990 {
					t.Errorf("expected year 1990, got %d", update.DOB.Year())
				}
			},
		},
		{name: "invalid name", input: domain.UpdateProfileInput{Name: strPtr("99")}, expectedField: "name"},
		{name: "invalid dob", input: domain.UpdateProfileInput{DOB: strPtr("not-a-date")}, expectedField: "dob"},
		{name: "underage dob", input: domain.UpdateProfileInput{DOB: strPtr("2020-01-01")}, expectedField: "dob"},
		{name: "invalid mobile", input: domain.UpdateProfileInput{Mobile: strPtr("123")}, expectedField: "mobile"},
		{name: "invalid location", input: domain.UpdateProfileInput{Location: strPtr("x")}, expectedField: "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			var captured domain.ProfileUpdate
			userRepo.UpdateProfileFunc = func(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
				captured = update
				return createValidUser(t), nil
			}

			svc := NewUserService(userRepo)
			_, err := svc.UpdateProfile(context.Background(), 1, tt.input)

			if tt.expectedField != "" {
				assertValidationField(t, err, tt.expectedField)
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tt.validateUpdate(t, captured)
		})
	}
}
