package config

import (
	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
	"github.com/lucasvtf/municcasign-code-challenge/internal/repository"
	"github.com/lucasvtf/municcasign-code-challenge/internal/service"
	"github.com/lucasvtf/municcasign-code-challenge/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	UserService     domain.UserService
	DocumentService domain.DocumentService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Seed empty collection files on first run.
	if err := repository.EnsureFile(config.GetUsersFilePath()); err != nil {
		return nil, err
	}
	if err := repository.EnsureFile(config.GetDocumentsFilePath()); err != nil {
		return nil, err
	}

	userStore := repository.NewJSONStore[domain.User](config.GetUsersFilePath(), appLogger)
	documentStore := repository.NewJSONStore[domain.Document](config.GetDocumentsFilePath(), appLogger)

	userService := service.NewUserService(userStore, appLogger)
	documentService := service.NewDocumentService(documentStore, userService, appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		UserService:     userService,
		DocumentService: documentService,
	}, nil
}
