package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/playconnect/domain"
)

// respondError renders a service-layer failure as the JSON body and status
// the API contract defines. Every sentinel maps here so no handler invents
// its own status for a shared error.
func respondError(c *gin.Context, err error) {
	if ve, ok := domain.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"msg": ve.Error(), "fields": ve.Fields})
		return
	}

	switch err {
	case domain.ErrInvalidCredentials,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
		domain.ErrTokenMalformed:
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
	case domain.ErrMatchNotOwner,
		domain.ErrTeamNotOwner:
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case domain.ErrUserNotFound,
		domain.ErrMatchNotFound,
		domain.ErrTeamNotFound,
		domain.ErrParticipantNotFound,
		domain.ErrNoTeamMembership:
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case domain.ErrEmailTaken:
		c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
	case domain.ErrResetCodeInvalid,
		domain.ErrDateNotFuture,
		domain.ErrMatchNotUpcoming,
		domain.ErrMatchFull,
		domain.ErrAlreadyJoined,
		domain.ErrNotJoined,
		domain.ErrCreatorLeave,
		domain.ErrCreatorRemove,
		domain.ErrAlreadyRequested,
		domain.ErrNoPendingRequest,
		domain.ErrNotTeamMember,
		domain.ErrTeamOwnerLeave,
		domain.ErrTeamOwnerRemove,
		domain.ErrMediaKind,
		domain.ErrMediaFileType,
		domain.ErrMediaTooLarge:
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	default:
		log.Printf("INTERNAL_ERROR: method=%s path=%s error=%v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
	}
}
