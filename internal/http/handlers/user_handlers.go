package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/http/middleware"
)

// UserHandlers handles profile and media HTTP requests
type UserHandlers struct {
	userSvc  domain.UserService
	mediaSvc domain.MediaService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService, mediaSvc domain.MediaService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc, mediaSvc: mediaSvc}
}

// UpdateProfileRequest carries optional profile fields; absent fields are
// left untouched.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	DOB          *string `json:"dob"`
	Mobile       *string `json:"mobile"`
	Location     *string `json:"location"`
	ProfileImage *string `json:"profileImage"`
}

// GetProfile returns the caller's profile
func (h *UserHandlers) GetProfile(c *gin.Context) {
	profile, err := h.userSvc.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// UpdateProfile applies a partial update to the caller's profile
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	profile, err := h.userSvc.UpdateProfile(c.Request.Context(), middleware.UserID(c), domain.UpdateProfileInput{
		Name:         req.Name,
		DOB:          req.DOB,
		Mobile:       req.Mobile,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Profile updated successfully", "user": profile})
}

// UploadMedia attaches an image or video to the caller's profile. The body is
// a multipart form with a "media" file part and a "type" field.
func (h *UserHandlers) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Media file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Could not read media file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Could not read media file"})
		return
	}

	media, err := h.mediaSvc.Attach(c.Request.Context(), middleware.UserID(c), c.PostForm("type"), &domain.FileUpload{
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Media uploaded successfully", "media": media})
}
