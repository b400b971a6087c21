package mocks

import (
	"context"

	"github.com/you/playconnect/domain"
)

// MockMediaService implements domain.MediaService interface for testing
type MockMediaService struct {
	AttachFunc func(ctx context.Context, actorID uint, kind string, file *domain.FileUpload) ([]domain.MediaItem, error)
}

// NewMockMediaService creates a new MockMediaService with default behaviors
func NewMockMediaService() *MockMediaService {
	return &MockMediaService{}
}

// Attach attaches a media file
func (m *MockMediaService) Attach(ctx context.Context, actorID uint, kind string, file *domain.FileUpload) ([]domain.MediaItem, error) {
	if m.AttachFunc != nil {
		return m.AttachFunc(ctx, actorID, kind, file)
	}
	// Default behavior: single stored item
	return []domain.MediaItem{{ID: 1, UserID: actorID, Kind: kind}}, nil
}

// Compile-time interface compliance verification
var _ domain.MediaService = (*MockMediaService)(nil)
