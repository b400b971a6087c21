package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/playconnect/domain"
	"github.com/you/playconnect/internal/config"
	"github.com/you/playconnect/internal/infrastructure/auth"
	"github.com/you/playconnect/internal/infrastructure/database"
	"github.com/you/playconnect/internal/infrastructure/notifications"
	"github.com/you/playconnect/internal/infrastructure/repositories"
	"github.com/you/playconnect/internal/infrastructure/storage"
	"github.com/you/playconnect/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo  domain.UserRepository
	MatchRepo domain.MatchRepository
	TeamRepo  domain.TeamRepository
	CodeStore domain.ResetCodeStore

	// Services
	PasswordSvc   domain.PasswordService
	TokenSvc      domain.TokenService
	MailerSvc     domain.MailerService
	MediaStorage  domain.MediaStorage
	AuthSvc       domain.AuthService
	ResetSvc      domain.PasswordResetService
	MatchSvc      domain.MatchService
	MembershipSvc domain.MembershipService
	TeamSvc       domain.TeamService
	UserSvc       domain.UserService
	MediaSvc      domain.MediaService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}
	if err := container.initStorage(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initStorage() error {
	mediaStorage, err := storage.NewS3Storage(context.Background(), c.Config.Storage)
	if err != nil {
		return err
	}
	c.MediaStorage = mediaStorage
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.MatchRepo = repositories.NewMatchRepository(c.DB)
	c.TeamRepo = repositories.NewTeamRepository(c.DB)
	c.CodeStore = repositories.NewResetCodeRepository(c.RedisClient, c.Config.ResetTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.MailerSvc = notifications.NewSMTPMailer(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.MediaStorage, c.Config.TokenTTL)
	c.ResetSvc = services.NewPasswordResetService(c.UserRepo, c.CodeStore, c.PasswordSvc, c.MailerSvc, c.Config.ResetCodeLength)
	c.MatchSvc = services.NewMatchService(c.MatchRepo, c.UserRepo)
	c.MembershipSvc = services.NewMembershipService(c.MatchRepo)
	c.TeamSvc = services.NewTeamService(c.TeamRepo, c.UserRepo)
	c.UserSvc = services.NewUserService(c.UserRepo)
	c.MediaSvc = services.NewMediaService(c.UserRepo, c.MediaStorage)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
