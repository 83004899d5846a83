package handlers

import (
	"github.com/Ind527/sultan1/internal/query"
	"github.com/Ind527/sultan1/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const defaultMessageLimit = 10

type ContactHandler struct {
	DB *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{DB: db}
}

// CreateMessageRequest is the public contact-form payload.
type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateMessageRequest covers staff triage: status only.
type UpdateMessageRequest struct {
	Status *string `json:"status"`
}

// GetMessages - GET /api/contact-messages
func (h *ContactHandler) GetMessages(c *fiber.Ctx) error {
	pg := query.NormalizePagination(c.QueryInt("page", 1), c.QueryInt("limit", defaultMessageLimit), defaultMessageLimit)

	f := &query.Filter{}
	if status := c.Query("status"); status != "" {
		f.Eq("status", status)
	}

	messages := make([]models.ContactMessage, 0)
	var total int64

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		tx := f.Apply(h.DB.WithContext(ctx).Model(&models.ContactMessage{}))
		return tx.Order("created_at desc").Limit(pg.Limit).Offset(pg.Offset).Find(&messages).Error
	})
	g.Go(func() error {
		return f.Apply(h.DB.WithContext(ctx).Model(&models.ContactMessage{})).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch contact messages"})
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"total":    total,
		"meta":     models.NewPaginationMeta(pg.Page, pg.Limit, total),
	})
}

// CreateMessage - POST /api/contact-messages (public)
func (h *ContactHandler) CreateMessage(c *fiber.Ctx) error {
	var req CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var details []models.ErrorDetail
	if req.Name == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "name", Message: "Name is required"})
	}
	if req.Email == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "email", Message: "Email is required"})
	}
	if req.Message == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "message", Message: "Message is required"})
	}
	if len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data", "errors": details})
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.MessageStatusUnread,
	}

	if err := h.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not send message"})
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// UpdateMessage - PUT /api/contact-messages/:id
func (h *ContactHandler) UpdateMessage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid message id"})
	}

	var message models.ContactMessage
	if err := h.DB.First(&message, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
	}

	var req UpdateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.Status != nil {
		if !models.ValidMessageStatus(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data", "errors": []models.ErrorDetail{
				{Code: "invalid", Field: "status", Message: "Status must be unread, read or replied"},
			}})
		}
		if err := h.DB.Model(&message).Update("status", *req.Status).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update message"})
		}
	}

	return c.JSON(message)
}

// DeleteMessage - DELETE /api/contact-messages/:id
func (h *ContactHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid message id"})
	}

	var message models.ContactMessage
	if err := h.DB.First(&message, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
	}

	if err := h.DB.Delete(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete message"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
