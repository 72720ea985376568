package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(origins []string) *fiber.App {
	app := fiber.New()
	Use(app, origins)
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestUse(t *testing.T) {
	app := newApp([]string{"http://localhost:3000"})

	t.Run("request id is set", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("cors allows configured origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})
}

func TestCORSConfig_DefaultsToAny(t *testing.T) {
	assert.Equal(t, "*", CORSConfig(nil).AllowOrigins)
}
