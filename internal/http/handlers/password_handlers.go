package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/playconnect/domain"
)

// PasswordHandlers handles the one-time-code recovery HTTP requests
type PasswordHandlers struct {
	resetSvc domain.PasswordResetService
}

// NewPasswordHandlers creates new password recovery handlers
func NewPasswordHandlers(resetSvc domain.PasswordResetService) *PasswordHandlers {
	return &PasswordHandlers{resetSvc: resetSvc}
}

// ForgotRequest represents a recovery code request
type ForgotRequest struct {
	Email string `json:"email"`
}

// ResetRequest represents a code redemption request
type ResetRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// Forgot issues a one-time code to a registered email. A delivery failure
// still succeeds; the caller is told delivery degraded.
func (h *PasswordHandlers) Forgot(c *gin.Context) {
	var req ForgotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	delivered, err := h.resetSvc.RequestCode(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	if !delivered {
		c.JSON(http.StatusOK, gin.H{"msg": "OTP generated but email sending failed. Check server logs for OTP."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "OTP sent to registered email"})
}

// Reset redeems a one-time code and sets the new password
func (h *PasswordHandlers) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.resetSvc.RedeemCode(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Password reset successful"})
}
