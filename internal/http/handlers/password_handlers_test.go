package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/mocks"
)

func TestPasswordHandlers_Forgot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupMock      func(svc *mocks.MockPasswordResetService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "code delivered",
			setupMock: func(svc *mocks.MockPasswordResetService) {
				svc.RequestCodeFunc = func(ctx context.Context, email string) (bool, error) {
					return true, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP sent to registered email",
		},
		{
			name: "delivery degraded",
			setupMock: func(svc *mocks.MockPasswordResetService) {
				svc.RequestCodeFunc = func(ctx context.Context, email string) (bool, error) {
					return false, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP generated but email sending failed. Check server logs for OTP.",
		},
		{
			name: "unknown email maps to 404",
			setupMock: func(svc *mocks.MockPasswordResetService) {
				svc.RequestCodeFunc = func(ctx context.Context, email string) (bool, error) {
					return false, domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetSvc := mocks.NewMockPasswordResetService()
			tt.setupMock(resetSvc)

			r := gin.New()
			r.POST("/api/password/forgot-password", NewPasswordHandlers(resetSvc).Forgot)

			body, _ := json.Marshal(ForgotRequest{Email: "test@example.com"})
			w := performRequest(r, http.MethodPost, "/api/password/forgot-password", bytes.NewBuffer(body), "application/json")

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["msg"])
			}
		})
	}
}

func TestPasswordHandlers_Reset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful reset", func(t *testing.T) {
		resetSvc := mocks.NewMockPasswordResetService()
		resetSvc.RedeemCodeFunc = func(ctx context.Context, email, code, newPassword string) error {
			assert.Equal(t, "test@example.com", email)
			assert.Equal(t, "123456", code)
			assert.Equal(t, "fresh123", newPassword)
			return nil
		}

		r := gin.New()
		r.POST("/api/password/reset-password", NewPasswordHandlers(resetSvc).Reset)

		body, _ := json.Marshal(ResetRequest{Email: "test@example.com", OTP: "123456", NewPassword: "fresh123"})
		w := performRequest(r, http.MethodPost, "/api/password/reset-password", bytes.NewBuffer(body), "application/json")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Password reset successful", decodeBody(t, w)["msg"])
	})

	t.Run("bad code maps to 400", func(t *testing.T) {
		resetSvc := mocks.NewMockPasswordResetService()
		resetSvc.RedeemCodeFunc = func(ctx context.Context, email, code, newPassword string) error {
			return domain.ErrResetCodeInvalid
		}

		r := gin.New()
		r.POST("/api/password/reset-password", NewPasswordHandlers(resetSvc).Reset)

		body, _ := json.Marshal(ResetRequest{Email: "test@example.com", OTP: "000000", NewPassword: "fresh123"})
		w := performRequest(r, http.MethodPost, "/api/password/reset-password", bytes.NewBuffer(body), "application/json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
