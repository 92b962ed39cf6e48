package handlers

import (
	"epic-votes/app"
	"epic-votes/middleware"
	"epic-votes/models"
	"epic-votes/services"
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// epicKeyParam decodes and validates the :epicKey path segment
func epicKeyParam(c *fiber.Ctx, a *app.App) (string, error) {
	key, err := url.PathUnescape(c.Params("epicKey"))
	if err != nil {
		return "", errors.New("epic_key is not a valid path segment")
	}

	if err := a.Validator.Validate(&models.EpicKeyParams{EpicKey: key}); err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

// serviceError maps input errors from the vote service to 400 and
// everything else to 500
func serviceError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidEpicKey),
		errors.Is(err, services.ErrInvalidUserID),
		errors.Is(err, services.ErrNoEpicKeys):
		return badRequest(c, err.Error())
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

// AddVote records the caller's vote for an epic
func AddVote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		epicKey, err := epicKeyParam(c, a)
		if err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)
		ctx := c.UserContext()

		added, err := a.VoteService.Vote(ctx, epicKey, userID)
		if err != nil {
			return serviceError(c, "Failed to add vote", err)
		}

		count, err := a.VoteService.Count(ctx, epicKey)
		if err != nil {
			return serviceError(c, "Failed to count votes", err)
		}

		body := fiber.Map{"epic_key": epicKey, "voted": true, "added": added, "count": count}
		if added {
			return created(c, body)
		}
		return success(c, body)
	}
}

// RemoveVote withdraws the caller's vote for an epic
func RemoveVote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		epicKey, err := epicKeyParam(c, a)
		if err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)
		ctx := c.UserContext()

		removed, err := a.VoteService.Unvote(ctx, epicKey, userID)
		if err != nil {
			return serviceError(c, "Failed to remove vote", err)
		}

		count, err := a.VoteService.Count(ctx, epicKey)
		if err != nil {
			return serviceError(c, "Failed to count votes", err)
		}

		return success(c, fiber.Map{"epic_key": epicKey, "removed": removed, "count": count})
	}
}

// GetVoteStatus returns the vote count and whether the caller voted
func GetVoteStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		epicKey, err := epicKeyParam(c, a)
		if err != nil {
			return validationError(c, err)
		}

		status, err := a.VoteService.Status(c.UserContext(), epicKey, middleware.GetUserID(c))
		if err != nil {
			return serviceError(c, "Failed to fetch vote status", err)
		}

		return c.JSON(status)
	}
}

func GetVoters(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		epicKey, err := epicKeyParam(c, a)
		if err != nil {
			return validationError(c, err)
		}

		votes, err := a.VoteService.Voters(c.UserContext(), epicKey)
		if err != nil {
			return serviceError(c, "Failed to fetch voters", err)
		}

		return success(c, fiber.Map{"votes": votes})
	}
}

// GetVoteCounts returns counts for a list of epics; epics without votes
// are left out of the result
func GetVoteCounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.EpicKeysRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		counts, err := a.VoteService.Counts(c.UserContext(), req.EpicKeys)
		if err != nil {
			return serviceError(c, "Failed to count votes", err)
		}

		return success(c, fiber.Map{"counts": counts})
	}
}

// GetVoteBoard returns a status entry for every requested epic
func GetVoteBoard(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.EpicKeysRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		board, err := a.VoteService.Board(c.UserContext(), req.EpicKeys, middleware.GetUserID(c))
		if err != nil {
			return serviceError(c, "Failed to fetch vote board", err)
		}

		return success(c, fiber.Map{"epics": board})
	}
}

func GetMyVotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		keys, err := a.VoteService.UserVotes(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return serviceError(c, "Failed to fetch votes", err)
		}

		return success(c, fiber.Map{"epic_keys": keys})
	}
}
