package handlers

import (
	"github.com/Ind527/sultan1/internal/query"
	"github.com/Ind527/sultan1/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const suggestionLimit = 5

type SearchHandler struct {
	DB *gorm.DB
}

func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{DB: db}
}

// Suggestion is the trimmed record the search box consumes.
type Suggestion struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category *uint  `json:"category"`
}

// GetSuggestions - GET /api/search/suggestions?q=
// Same predicate engine as the product listing, restricted to active
// products and capped at five rows. Queries shorter than two characters
// return an empty list rather than an error.
func (h *SearchHandler) GetSuggestions(c *fiber.Ctx) error {
	q := c.Query("q")
	suggestions := make([]Suggestion, 0, suggestionLimit)
	if len(q) < 2 {
		return c.JSON(suggestions)
	}

	f := &query.Filter{}
	f.Contains("name", q)
	f.Eq("is_active", true)

	var products []models.Product
	tx := f.Apply(h.DB.Model(&models.Product{})).
		Select("id", "name", "slug", "category_id").
		Order("created_at desc").
		Limit(suggestionLimit)
	if err := tx.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch suggestions"})
	}

	for _, p := range products {
		suggestions = append(suggestions, Suggestion{
			ID:       p.ID,
			Name:     p.Name,
			Slug:     p.Slug,
			Category: p.CategoryID,
		})
	}

	return c.JSON(suggestions)
}
