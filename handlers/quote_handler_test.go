package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ind527/sultan1/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationResponse struct {
	Error  string               `json:"error"`
	Errors []models.ErrorDetail `json:"errors"`
}

func TestCreateQuoteValidation(t *testing.T) {
	app := fiber.New()
	h := NewQuoteHandler(nil) // validation fails before the store is touched
	app.Post("/api/quotes", h.CreateQuote)

	cases := []struct {
		name          string
		body          string
		missingFields []string
	}{
		{
			name:          "empty payload reports every required field",
			body:          `{}`,
			missingFields: []string{"full_name", "email", "country", "product_details"},
		},
		{
			name:          "partially filled payload reports the rest",
			body:          `{"full_name":"Jane Buyer","email":"jane@example.com"}`,
			missingFields: []string{"country", "product_details"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/quotes", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body validationResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Invalid data", body.Error)
			require.Len(t, body.Errors, len(tc.missingFields))

			got := make([]string, 0, len(body.Errors))
			for _, detail := range body.Errors {
				assert.Equal(t, "required", detail.Code)
				got = append(got, detail.Field)
			}
			assert.ElementsMatch(t, tc.missingFields, got)
		})
	}
}

func TestCreateQuoteRejectsMalformedJSON(t *testing.T) {
	app := fiber.New()
	h := NewQuoteHandler(nil)
	app.Post("/api/quotes", h.CreateQuote)

	req := httptest.NewRequest("POST", "/api/quotes", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateQuoteRejectsInvalidID(t *testing.T) {
	app := fiber.New()
	h := NewQuoteHandler(nil)
	app.Put("/api/quotes/:id", h.UpdateQuote)

	req := httptest.NewRequest("PUT", "/api/quotes/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
