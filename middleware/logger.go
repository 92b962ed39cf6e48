package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed back on every response
const RequestIDHeader = "X-Request-ID"

// StructuredLogger assigns a request id and logs one line per request,
// at a level chosen from the outcome.
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Locals("requestID", requestID)
		c.Set(RequestIDHeader, requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("ip", c.IP()),
		}

		if userID := GetUserID(c); userID != "" {
			logAttrs = append(logAttrs, slog.String("user_id", userID))
		}
		if epicKey := c.Params("epicKey"); epicKey != "" {
			logAttrs = append(logAttrs, slog.String("epic_key", epicKey))
		}

		switch {
		case err != nil:
			logAttrs = append(logAttrs, slog.String("error", err.Error()))
			logger.LogAttrs(c.UserContext(), slog.LevelError, "request error", logAttrs...)
		case status >= 500:
			logger.LogAttrs(c.UserContext(), slog.LevelError, "server error", logAttrs...)
		case status >= 400:
			logger.LogAttrs(c.UserContext(), slog.LevelWarn, "client error", logAttrs...)
		default:
			logger.LogAttrs(c.UserContext(), slog.LevelInfo, "request completed", logAttrs...)
		}

		return err
	}
}

// GetRequestID returns the id assigned by StructuredLogger, if any
func GetRequestID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestID").(string)
	if !ok {
		return ""
	}
	return id
}
