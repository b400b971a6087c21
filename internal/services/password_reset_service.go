package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/you/playconnect/domain"
)

// PasswordResetServiceImpl implements domain.PasswordResetService
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	codeStore   domain.ResetCodeStore
	passwordSvc domain.PasswordService
	mailerSvc   domain.MailerService
	codeLength  int
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	codeStore domain.ResetCodeStore,
	passwordSvc domain.PasswordService,
	mailerSvc domain.MailerService,
	codeLength int,
) domain.PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		codeStore:   codeStore,
		passwordSvc: passwordSvc,
		mailerSvc:   mailerSvc,
		codeLength:  codeLength,
	}
}

// RequestCode implements domain.PasswordResetService. Storing the new code
// replaces any previous one, so only a single code is ever redeemable per
// email. Delivery failure is non-fatal: the code stays valid and is logged
// for operator fallback, and the caller learns delivery degraded.
func (s *PasswordResetServiceImpl) RequestCode(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, domain.NewValidationError().Add("email", "is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	code, err := s.generateCode()
	if err != nil {
		return false, fmt.Errorf("failed to generate reset code: %w", err)
	}

	if err := s.codeStore.Put(ctx, user.Email, code); err != nil {
		return false, err
	}

	if err := s.mailerSvc.SendResetCode(user.Email, code); err != nil {
		log.Printf("RESET_CODE_DELIVERY_FAILED: email=%s code=%s error=%v", user.Email, code, err)
		return false, nil
	}

	return true, nil
}

// RedeemCode implements domain.PasswordResetService
func (s *PasswordResetServiceImpl) RedeemCode(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	newPassword = strings.TrimSpace(newPassword)

	ve := domain.NewValidationError()
	if email == "" {
		ve.Add("email", "is required")
	}
	if code == "" {
		ve.Add("otp", "is required")
	}
	if newPassword == "" {
		ve.Add("newPassword", "is required")
	} else if !validPassword(newPassword) {
		ve.Add("newPassword", "must be at least 6 characters and contain a letter and a number")
	}
	if ve.HasErrors() {
		return ve
	}

	if err := s.codeStore.Consume(ctx, email, code); err != nil {
		return err
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, email, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// generateCode produces a cryptographically random numeric code.
func (s *PasswordResetServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.codeLength)
	for i := range digits {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
