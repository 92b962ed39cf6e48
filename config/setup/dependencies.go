package setup

import (
	"epic-votes/app"
	"epic-votes/database"
	"log/slog"
)

// InitDatabase opens the SQLite database and applies the schema
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases resources held by the application
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
