package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/playconnect/internal/http/handlers"
	"github.com/you/playconnect/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.PasswordHandlers, mh *handlers.MatchHandlers, th *handlers.TeamHandlers, uh *handlers.UserHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)

	pwd := r.Group("/api/password")
	pwd.POST("/forgot-password", ph.Forgot)
	pwd.POST("/reset-password", ph.Reset)

	v := r.Group("/api").Use(jwtmw.WithJWT())

	v.POST("/matches", mh.Create)
	v.GET("/matches", mh.List)
	v.GET("/matches/my-matches", mh.MyMatches)
	v.GET("/matches/joined-matches", mh.JoinedMatches)
	v.GET("/matches/:id", mh.Get)
	v.PUT("/matches/:id", mh.Update)
	v.DELETE("/matches/:id", mh.Delete)
	v.POST("/matches/:id/join", mh.Join)
	v.POST("/matches/:id/leave", mh.Leave)

	v.GET("/participants/match/:matchId", mh.Participants)
	v.DELETE("/participants/match/:matchId/:participantId", mh.RemoveParticipant)

	v.POST("/teams/create", th.Create)
	v.POST("/teams/join-request", th.RequestJoin)
	v.POST("/teams/approve-request", th.ApproveRequest)
	v.POST("/teams/reject-request", th.RejectRequest)
	v.POST("/teams/delete-member", th.RemoveMember)
	v.POST("/teams/leave-team", th.Leave)
	v.GET("/teams/:teamId", th.Get)

	v.GET("/users", uh.GetProfile)
	v.PUT("/users", uh.UpdateProfile)
	v.POST("/users/media", uh.UploadMedia)

	return r
}
