package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageValidation(t *testing.T) {
	app := fiber.New()
	h := NewContactHandler(nil)
	app.Post("/api/contact-messages", h.CreateMessage)

	req := httptest.NewRequest("POST", "/api/contact-messages", strings.NewReader(`{"subject":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body validationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid data", body.Error)

	fields := make([]string, 0, len(body.Errors))
	for _, detail := range body.Errors {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "message"}, fields)
}
