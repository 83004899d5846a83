package handlers

import (
	"github.com/Ind527/sultan1/internal/query"
	"github.com/Ind527/sultan1/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const defaultQuoteLimit = 10

type QuoteHandler struct {
	DB *gorm.DB
}

func NewQuoteHandler(db *gorm.DB) *QuoteHandler {
	return &QuoteHandler{DB: db}
}

// CreateQuoteRequest is the public quote-request funnel payload.
type CreateQuoteRequest struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Company           string `json:"company"`
	Phone             string `json:"phone"`
	Country           string `json:"country"`
	ProductCategory   string `json:"product_category"`
	ProductDetails    string `json:"product_details"`
	EstimatedQuantity string `json:"estimated_quantity"`
	DeliveryPort      string `json:"delivery_port"`
}

// UpdateQuoteRequest covers staff triage: status and notes only.
type UpdateQuoteRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// GetQuotes - GET /api/quotes
func (h *QuoteHandler) GetQuotes(c *fiber.Ctx) error {
	pg := query.NormalizePagination(c.QueryInt("page", 1), c.QueryInt("limit", defaultQuoteLimit), defaultQuoteLimit)

	f := &query.Filter{}
	if status := c.Query("status"); status != "" {
		f.Eq("status", status)
	}

	quotes := make([]models.Quote, 0)
	var total int64

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		tx := f.Apply(h.DB.WithContext(ctx).Model(&models.Quote{}))
		return tx.Order("created_at desc").Limit(pg.Limit).Offset(pg.Offset).Find(&quotes).Error
	})
	g.Go(func() error {
		return f.Apply(h.DB.WithContext(ctx).Model(&models.Quote{})).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch quotes"})
	}

	return c.JSON(fiber.Map{
		"quotes": quotes,
		"total":  total,
		"meta":   models.NewPaginationMeta(pg.Page, pg.Limit, total),
	})
}

// GetQuote - GET /api/quotes/:id
func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quote id"})
	}

	var quote models.Quote
	if err := h.DB.First(&quote, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
	}

	return c.JSON(quote)
}

// CreateQuote - POST /api/quotes (public)
func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var req CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var details []models.ErrorDetail
	if req.FullName == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "full_name", Message: "Full name is required"})
	}
	if req.Email == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "email", Message: "Email is required"})
	}
	if req.Country == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "country", Message: "Country is required"})
	}
	if req.ProductDetails == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "product_details", Message: "Product details are required"})
	}
	if len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data", "errors": details})
	}

	quote := models.Quote{
		FullName:          req.FullName,
		Email:             req.Email,
		Company:           req.Company,
		Phone:             req.Phone,
		Country:           req.Country,
		ProductCategory:   req.ProductCategory,
		ProductDetails:    req.ProductDetails,
		EstimatedQuantity: req.EstimatedQuantity,
		DeliveryPort:      req.DeliveryPort,
		Status:            models.QuoteStatusPending,
	}

	if err := h.DB.Create(&quote).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create quote request"})
	}

	return c.Status(fiber.StatusCreated).JSON(quote)
}

// UpdateQuote - PUT /api/quotes/:id
func (h *QuoteHandler) UpdateQuote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quote id"})
	}

	var quote models.Quote
	if err := h.DB.First(&quote, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
	}

	var req UpdateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		if !models.ValidQuoteStatus(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data", "errors": []models.ErrorDetail{
				{Code: "invalid", Field: "status", Message: "Status must be pending, processed or completed"},
			}})
		}
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&quote).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update quote"})
		}
		if err := h.DB.First(&quote, id).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update quote"})
		}
	}

	return c.JSON(quote)
}

// DeleteQuote - DELETE /api/quotes/:id
func (h *QuoteHandler) DeleteQuote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quote id"})
	}

	var quote models.Quote
	if err := h.DB.First(&quote, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
	}

	if err := h.DB.Delete(&quote).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete quote"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
