package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	app.Use(StructuredLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), Security())
	app.Get("/whoami", IdentityRequired(), func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c))
	})
	return app
}

func TestIdentityRequired(t *testing.T) {
	app := setupTestApp()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "User id is passed through", header: "u1", wantStatus: http.StatusOK, wantBody: "u1"},
		{name: "Surrounding whitespace is trimmed", header: "  u2 ", wantStatus: http.StatusOK, wantBody: "u2"},
		{name: "Missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Blank header", header: "   ", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestStructuredLoggerRequestID(t *testing.T) {
	app := setupTestApp()

	t.Run("Generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(UserIDHeader, "u1")

		resp, err := app.Test(req)
		require.NoError(t, err)

		_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
		assert.NoError(t, err)
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	})

	t.Run("Incoming id is kept", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(UserIDHeader, "u1")
		req.Header.Set(RequestIDHeader, id)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
	})

	t.Run("Malformed incoming id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(UserIDHeader, "u1")
		req.Header.Set(RequestIDHeader, "not-a-uuid")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
	})
}
