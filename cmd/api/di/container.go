package di

import (
	"fmt"

	"user-service/cmd/api/infrastructure"
	ginhandler "user-service/internal/adapter/gin/handler"
	"user-service/internal/adapter/repository/postgres"
	"user-service/internal/config"
	"user-service/internal/usecase/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	UserService user.Usecase
	UserHandler *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := postgres.NewUserRepoPG(db, l)
	userService := user.New(repo, l)
	userHandler := ginhandler.NewUserHandler(userService, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		UserService: userService,
		UserHandler: userHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
