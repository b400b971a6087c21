package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/http/middleware"
)

// MatchHandlers handles match registry and membership HTTP requests
type MatchHandlers struct {
	matchSvc      domain.MatchService
	membershipSvc domain.MembershipService
}

// NewMatchHandlers creates new match handlers
func NewMatchHandlers(matchSvc domain.MatchService, membershipSvc domain.MembershipService) *MatchHandlers {
	return &MatchHandlers{
		matchSvc:      matchSvc,
		membershipSvc: membershipSvc,
	}
}

// CreateMatchRequest represents a create-match request
type CreateMatchRequest struct {
	Title       string `json:"title"`
	GameType    string `json:"gameType"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	MaxPlayers  int    `json:"maxPlayers"`
	Description string `json:"description"`
}

// UpdateMatchRequest represents a partial match update; absent fields are
// left untouched.
type UpdateMatchRequest struct {
	Title       *string `json:"title"`
	GameType    *string `json:"gameType"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	MaxPlayers  *int    `json:"maxPlayers"`
	Description *string `json:"description"`
}

func matchID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Create handles match creation
func (h *MatchHandlers) Create(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	match, err := h.matchSvc.Create(c.Request.Context(), middleware.UserID(c), domain.CreateMatchInput{
		Title:       req.Title,
		GameType:    req.GameType,
		Date:        req.Date,
		Location:    req.Location,
		MaxPlayers:  req.MaxPlayers,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Match created successfully", "match": match})
}

// List handles filtered match listing
func (h *MatchHandlers) List(c *gin.Context) {
	filter := domain.MatchFilter{
		GameType: c.Query("gameType"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("date"); raw != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				filter.DateFrom = &t
				break
			}
		}
		if filter.DateFrom == nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid date filter"})
			return
		}
	}

	matches, err := h.matchSvc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// Get handles fetching a single match
func (h *MatchHandlers) Get(c *gin.Context) {
	id, ok := matchID(c, "id")
	if !ok {
		return
	}

	match, err := h.matchSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// MyMatches lists matches the caller created or joined
func (h *MatchHandlers) MyMatches(c *gin.Context) {
	matches, err := h.matchSvc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// JoinedMatches lists matches the caller joined but did not create
func (h *MatchHandlers) JoinedMatches(c *gin.Context) {
	matches, err := h.matchSvc.ListJoined(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// Update handles creator-only partial match updates
func (h *MatchHandlers) Update(c *gin.Context) {
	id, ok := matchID(c, "id")
	if !ok {
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	match, err := h.matchSvc.Update(c.Request.Context(), middleware.UserID(c), id, domain.UpdateMatchInput{
		Title:       req.Title,
		GameType:    req.GameType,
		Date:        req.Date,
		Location:    req.Location,
		MaxPlayers:  req.MaxPlayers,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Match updated successfully", "match": match})
}

// Delete handles creator-only match removal
func (h *MatchHandlers) Delete(c *gin.Context) {
	id, ok := matchID(c, "id")
	if !ok {
		return
	}

	if err := h.matchSvc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Match deleted successfully"})
}

// Join adds the caller to a match's participant set
func (h *MatchHandlers) Join(c *gin.Context) {
	id, ok := matchID(c, "id")
	if !ok {
		return
	}

	match, err := h.membershipSvc.Join(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Successfully joined match", "match": match})
}

// Leave removes the caller from a match's participant set
func (h *MatchHandlers) Leave(c *gin.Context) {
	id, ok := matchID(c, "id")
	if !ok {
		return
	}

	match, err := h.membershipSvc.Leave(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Successfully left match", "match": match})
}

// Participants lists a match's resolved participant set
func (h *MatchHandlers) Participants(c *gin.Context) {
	id, ok := matchID(c, "matchId")
	if !ok {
		return
	}

	participants, err := h.membershipSvc.Participants(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

// RemoveParticipant handles creator-only participant moderation
func (h *MatchHandlers) RemoveParticipant(c *gin.Context) {
	id, ok := matchID(c, "matchId")
	if !ok {
		return
	}
	targetID, ok := matchID(c, "participantId")
	if !ok {
		return
	}

	err := h.membershipSvc.RemoveParticipant(c.Request.Context(), middleware.UserID(c), id, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Participant removed successfully"})
}
