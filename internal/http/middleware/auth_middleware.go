package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/playconnect/domain"
)

// Context keys set by the authentication middleware.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// AuthMiddleware creates authentication middleware. Missing or invalid
// bearer tokens are rejected with 401 uniformly.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)

		c.Next()
	})
}

// UserID returns the authenticated user's id from the request context.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(CtxUserID)
	userID, _ := id.(uint)
	return userID
}
