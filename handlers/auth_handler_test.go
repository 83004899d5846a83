package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	app := fiber.New()
	h := NewAuthHandler(nil, session.New()) // rejected before the store is touched
	app.Post("/api/register", h.Register)

	cases := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			name:       "empty payload",
			body:       `{}`,
			wantFields: []string{"username", "email", "password"},
		},
		{
			name:       "short password",
			body:       `{"username":"staff","email":"staff@example.com","password":"short"}`,
			wantFields: []string{"password"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/register", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body validationResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			fields := make([]string, 0, len(body.Errors))
			for _, detail := range body.Errors {
				fields = append(fields, detail.Field)
			}
			assert.ElementsMatch(t, tc.wantFields, fields)
		})
	}
}
