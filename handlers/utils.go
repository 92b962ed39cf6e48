package handlers

import (
	"epic-votes/middleware"
	"epic-votes/validator"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   errs.Error(),
			"details": errs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}
