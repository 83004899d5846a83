package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Queries under two characters short-circuit to an empty list without
// touching the store.
func TestGetSuggestionsShortQuery(t *testing.T) {
	app := fiber.New()
	h := NewSearchHandler(nil)
	app.Get("/api/search/suggestions", h.GetSuggestions)

	for _, target := range []string{
		"/api/search/suggestions",
		"/api/search/suggestions?q=",
		"/api/search/suggestions?q=r",
	} {
		req := httptest.NewRequest("GET", target, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)

		var suggestions []Suggestion
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&suggestions))
		assert.Empty(t, suggestions, target)
	}
}
