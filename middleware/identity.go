package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDHeader carries the caller-supplied user identity. The value is
// trusted as-is; verifying it is the job of whatever sits in front of us.
const UserIDHeader = "X-User-ID"

// IdentityRequired rejects requests without a user id and stores it in locals
func IdentityRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(UserIDHeader))
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing " + UserIDHeader + " header",
			})
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}
