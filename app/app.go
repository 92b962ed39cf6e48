package app

import (
	"epic-votes/services"
	"epic-votes/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	VoteService *services.VoteService
	Validator   *validator.Validator
	Logger      *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo services.VoteRepository, logger *slog.Logger) *App {
	return &App{
		VoteService: services.NewVoteService(repo),
		Validator:   validator.New(),
		Logger:      logger,
	}
}
