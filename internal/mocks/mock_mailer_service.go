package mocks

import "github.com/you/playconnect/domain"

// MockMailerService implements domain.MailerService interface for testing
type MockMailerService struct {
	SendResetCodeFunc func(to, code string) error
}

// NewMockMailerService creates a new MockMailerService with default behaviors
func NewMockMailerService() *MockMailerService {
	return &MockMailerService{}
}

// SendResetCode sends a one-time code email
func (m *MockMailerService) SendResetCode(to, code string) error {
	if m.SendResetCodeFunc != nil {
		return m.SendResetCodeFunc(to, code)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.MailerService = (*MockMailerService)(nil)
