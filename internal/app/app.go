package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/playconnect/internal/config"
	httpx "github.com/you/playconnect/internal/http"
	"github.com/you/playconnect/internal/http/handlers"
	"github.com/you/playconnect/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	pwdH := handlers.NewPasswordHandlers(c.ResetSvc)
	matchH := handlers.NewMatchHandlers(c.MatchSvc, c.MembershipSvc)
	teamH := handlers.NewTeamHandlers(c.TeamSvc)
	userH := handlers.NewUserHandlers(c.UserSvc, c.MediaSvc)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, pwdH, matchH, teamH, userH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
