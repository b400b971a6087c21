package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/http/middleware"
)

// TeamHandlers handles team registry HTTP requests
type TeamHandlers struct {
	teamSvc domain.TeamService
}

// NewTeamHandlers creates new team handlers
func NewTeamHandlers(teamSvc domain.TeamService) *TeamHandlers {
	return &TeamHandlers{teamSvc: teamSvc}
}

// CreateTeamRequest represents a create-team request
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TeamRequest targets a team by id
type TeamRequest struct {
	TeamID uint `json:"teamId"`
}

// TeamMemberRequest targets a user within a team
type TeamMemberRequest struct {
	TeamID uint `json:"teamId"`
	UserID uint `json:"userId"`
}

// Create handles team creation. The creator becomes the first member.
func (h *TeamHandlers) Create(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	team, err := h.teamSvc.Create(c.Request.Context(), middleware.UserID(c), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Team created successfully", "team": team})
}

// Get handles fetching a single team
func (h *TeamHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("teamId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid id"})
		return
	}

	team, err := h.teamSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// RequestJoin records the caller's pending join request on a team
func (h *TeamHandlers) RequestJoin(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	team, err := h.teamSvc.RequestJoin(c.Request.Context(), middleware.UserID(c), req.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Join request sent", "team": team})
}

// ApproveRequest promotes a pending join request to membership. Owner only.
func (h *TeamHandlers) ApproveRequest(c *gin.Context) {
	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	team, err := h.teamSvc.ApproveRequest(c.Request.Context(), middleware.UserID(c), req.TeamID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Join request approved", "team": team})
}

// RejectRequest discards a pending join request. Owner only.
func (h *TeamHandlers) RejectRequest(c *gin.Context) {
	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	team, err := h.teamSvc.RejectRequest(c.Request.Context(), middleware.UserID(c), req.TeamID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Join request rejected", "team": team})
}

// RemoveMember removes a member from the team. Owner only.
func (h *TeamHandlers) RemoveMember(c *gin.Context) {
	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	team, err := h.teamSvc.RemoveMember(c.Request.Context(), middleware.UserID(c), req.TeamID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Member removed successfully", "team": team})
}

// Leave removes the caller from whichever team they belong to
func (h *TeamHandlers) Leave(c *gin.Context) {
	team, err := h.teamSvc.Leave(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Left team successfully", "team": team})
}
