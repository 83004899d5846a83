package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requests with no session cookie never reach the handler or the store.
func TestGuardsRejectAnonymousRequests(t *testing.T) {
	app := fiber.New()
	guard := NewAuthMiddleware(nil, session.New())

	handlerHit := false
	final := func(c *fiber.Ctx) error {
		handlerHit = true
		return c.SendString("ok")
	}

	app.Get("/staff", guard.RequireAuth, final)
	app.Get("/admin", guard.RequireAdmin, final)

	for _, target := range []string{"/staff", "/admin"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}
	assert.False(t, handlerHit)
}

// A cookie carrying an unknown or made-up session id is anonymous, not
// an error.
func TestGuardsRejectStaleSessionID(t *testing.T) {
	app := fiber.New()
	guard := NewAuthMiddleware(nil, session.New())

	app.Get("/staff", guard.RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/staff", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "11111111-1111-1111-1111-111111111111"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
