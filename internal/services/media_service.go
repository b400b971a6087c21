package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/you/playconnect/domain"
)

const (
	maxImageSize = 5 << 20  // 5MB
	maxVideoSize = 50 << 20 // 50MB
)

var (
	imageContentTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/jpg":  ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
	videoContentTypes = map[string]string{
		"video/mp4":       ".mp4",
		"video/quicktime": ".mov",
		"video/webm":      ".webm",
	}
)

// checkImageUpload validates an image file against the upload policy.
func checkImageUpload(file *domain.FileUpload) error {
	if _, ok := imageContentTypes[file.ContentType]; !ok {
		return fmt.Errorf("only JPEG, PNG and WebP are allowed")
	}
	if file.Size > maxImageSize {
		return fmt.Errorf("maximum size is 5MB")
	}
	return nil
}

// extensionFor maps a known content type to an object key extension.
func extensionFor(contentType string) string {
	if ext, ok := imageContentTypes[contentType]; ok {
		return ext
	}
	if ext, ok := videoContentTypes[contentType]; ok {
		return ext
	}
	return ""
}

// MediaServiceImpl implements domain.MediaService
type MediaServiceImpl struct {
	userRepo domain.UserRepository
	storage  domain.MediaStorage
}

// NewMediaService creates a new media service
func NewMediaService(userRepo domain.UserRepository, storage domain.MediaStorage) domain.MediaService {
	return &MediaServiceImpl{
		userRepo: userRepo,
		storage:  storage,
	}
}

// Attach implements domain.MediaService: stores the file externally and
// appends the reference to the owner's media list.
func (s *MediaServiceImpl) Attach(ctx context.Context, actorID uint, kind string, file *domain.FileUpload) ([]domain.MediaItem, error) {
	if kind != domain.MediaImage && kind != domain.MediaVideo {
		return nil, domain.ErrMediaKind
	}
	if file == nil || len(file.Data) == 0 {
		return nil, domain.NewValidationError().Add("file", "is required")
	}

	switch kind {
	case domain.MediaImage:
		if _, ok := imageContentTypes[file.ContentType]; !ok {
			return nil, domain.ErrMediaFileType
		}
		if file.Size > maxImageSize {
			return nil, domain.ErrMediaTooLarge
		}
	case domain.MediaVideo:
		if _, ok := videoContentTypes[file.ContentType]; !ok {
			return nil, domain.ErrMediaFileType
		}
		if file.Size > maxVideoSize {
			return nil, domain.ErrMediaTooLarge
		}
	}

	user, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("playconnect_media/%s%s", uuid.NewString(), extensionFor(file.ContentType))
	url, err := s.storage.Upload(ctx, key, file.ContentType, file.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	item := &domain.MediaItem{
		UserID:     user.ID,
		Kind:       kind,
		URL:        url,
		UploadedAt: time.Now(),
	}
	if err := s.userRepo.AddMedia(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save media reference: %w", err)
	}

	return s.userRepo.ListMedia(ctx, user.ID)
}
