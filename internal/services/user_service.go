package services

import (
	"context"
	"strings"
	"time"

	"github.com/you/playconnect/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetProfile implements domain.UserService
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile implements domain.UserService with partial-update semantics.
// Supplied fields are validated against the same policy as registration.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, input domain.UpdateProfileInput) (*domain.Profile, error) {
	ve := domain.NewValidationError()
	update := domain.ProfileUpdate{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if !validName(name) {
			ve.Add("name", "should only contain letters and spaces (2-50 characters)")
		} else {
			update.Name = &name
		}
	}
	if input.DOB != nil {
		dob, ok := parseDate(strings.TrimSpace(*input.DOB))
		switch {
		case !ok:
			ve.Add("dob", "must be a valid date")
		case !validAge(dob, time.Now()):
			ve.Add("dob", "age must be between 13 and 120 years")
		default:
			update.DOB = &dob
		}
	}
	if input.Mobile != nil {
		mobile := strings.TrimSpace(*input.Mobile)
		if !validMobile(mobile) {
			ve.Add("mobile", "must be a valid mobile number (10-15 digits)")
		} else {
			update.Mobile = &mobile
		}
	}
	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if !validLocation(location) {
			ve.Add("location", "must be between 2 and 100 characters")
		} else {
			update.Location = &location
		}
	}
	if input.ProfileImage != nil {
		update.ProfileImage = input.ProfileImage
	}

	if ve.HasErrors() {
		return nil, ve
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}
