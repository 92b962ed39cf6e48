package setup

import (
	"epic-votes/app"
	"epic-votes/handlers"
	"epic-votes/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api", middleware.IdentityRequired())

	api.Get("/epics/:epicKey/votes", handlers.GetVoteStatus(application))
	api.Post("/epics/:epicKey/votes", handlers.AddVote(application))
	api.Delete("/epics/:epicKey/votes", handlers.RemoveVote(application))
	api.Get("/epics/:epicKey/voters", handlers.GetVoters(application))
	api.Post("/votes/counts", handlers.GetVoteCounts(application))
	api.Post("/votes/board", handlers.GetVoteBoard(application))
	api.Get("/me/votes", handlers.GetMyVotes(application))
}
