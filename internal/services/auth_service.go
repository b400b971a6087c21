package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/you/playconnect/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	storage     domain.MediaStorage
	tokenTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	storage domain.MediaStorage,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		storage:     storage,
		tokenTTL:    tokenTTL,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	password := strings.TrimSpace(input.Password)
	mobile := strings.TrimSpace(input.Mobile)
	dobRaw := strings.TrimSpace(input.DOB)
	location := strings.TrimSpace(input.Location)

	ve := domain.NewValidationError()
	if name == "" {
		ve.Add("name", "is required")
	} else if !validName(name) {
		ve.Add("name", "should only contain letters and spaces (2-50 characters)")
	}
	if email == "" {
		ve.Add("email", "is required")
	} else if !validEmail(email) {
		ve.Add("email", "must be a valid email address")
	}
	if password == "" {
		ve.Add("password", "is required")
	} else if !validPassword(password) {
		ve.Add("password", "must be at least 6 characters and contain a letter and a number")
	}
	if mobile == "" {
		ve.Add("mobile", "is required")
	} else if !validMobile(mobile) {
		ve.Add("mobile", "must be a valid mobile number (10-15 digits)")
	}

	var dob time.Time
	if dobRaw == "" {
		ve.Add("dob", "is required")
	} else if parsed, ok := parseDate(dobRaw); !ok {
		ve.Add("dob", "must be a valid date")
	} else if !validAge(parsed, time.Now()) {
		ve.Add("dob", "age must be between 13 and 120 years")
	} else {
		dob = parsed
	}

	if location == "" {
		ve.Add("location", "is required")
	} else if !validLocation(location) {
		ve.Add("location", "must be between 2 and 100 characters")
	}

	if input.ProfileImage != nil {
		if err := checkImageUpload(input.ProfileImage); err != nil {
			ve.Add("profileImage", err.Error())
		}
	}

	if ve.HasErrors() {
		return nil, ve
	}

	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	imageURL := ""
	if input.ProfileImage != nil {
		key := fmt.Sprintf("playconnect_profiles/%s%s", uuid.NewString(), extensionFor(input.ProfileImage.ContentType))
		url, err := s.storage.Upload(ctx, key, input.ProfileImage.ContentType, input.ProfileImage.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile image: %w", err)
		}
		imageURL = url
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Mobile:       mobile,
		DOB:          dob,
		Location:     location,
		ProfileImage: imageURL,
	}

	// The unique email index backs this up if two registrations race past
	// the lookup above.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrEmailTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// return the same error so accounts cannot be enumerated.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	ve := domain.NewValidationError()
	if email == "" {
		ve.Add("email", "is required")
	} else if !validEmail(email) {
		ve.Add("email", "must be a valid email address")
	}
	if len(password) < 6 {
		ve.Add("password", "must be at least 6 characters")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	now := time.Now()
	user.LastLogin = &now

	token, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}
