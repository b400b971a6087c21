package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockMediaStorage implements domain.MediaStorage interface for testing
type MockMediaStorage struct {
	UploadFunc func(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// NewMockMediaStorage creates a new MockMediaStorage with default behaviors
func NewMockMediaStorage() *MockMediaStorage {
	return &MockMediaStorage{}
}

// Upload stores an object and returns its public URL
func (m *MockMediaStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, contentType, data)
	}
	// Default behavior: deterministic URL
	return "https://storage.example.com/" + key, nil
}

// Compile-time interface compliance verification
var _ domain.MediaStorage = (*MockMediaStorage)(nil)
