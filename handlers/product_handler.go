package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/Ind527/sultan1/internal/query"
	"github.com/Ind527/sultan1/models"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const defaultProductLimit = 20

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// ProductRequest carries create payloads; pointer fields double as the
// partial-update payload, where nil means "leave unchanged".
type ProductRequest struct {
	Name             *string            `json:"name"`
	Slug             *string            `json:"slug"`
	Description      *string            `json:"description"`
	ShortDescription *string            `json:"short_description"`
	CategoryID       *uint              `json:"category_id"`
	Images           *[]string          `json:"images"`
	Specifications   *map[string]string `json:"specifications"`
	Volume           *string            `json:"volume"`
	Weight           *string            `json:"weight"`
	BrixLevel        *string            `json:"brix_level"`
	Price            *string            `json:"price"`
	IsActive         *bool              `json:"is_active"`
	IsFeatured       *bool              `json:"is_featured"`
	Rating           *decimal.Decimal   `json:"rating"`
}

// GetProducts - GET /api/products
// All filter parameters are optional and combine with AND. The bounded
// fetch and the total count share one predicate and run concurrently.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	pg := query.NormalizePagination(c.QueryInt("page", 1), c.QueryInt("limit", defaultProductLimit), defaultProductLimit)

	f := &query.Filter{}
	if search := c.Query("search"); search != "" {
		f.Contains("name", search)
	}
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "categoryId must be a number"})
		}
		f.Eq("category_id", categoryID)
	}
	// Only the literal strings "true"/"false" constrain the flags;
	// anything else leaves them unconstrained.
	if raw := c.Query("isActive"); raw == "true" || raw == "false" {
		f.Eq("is_active", raw == "true")
	}
	if raw := c.Query("isFeatured"); raw == "true" || raw == "false" {
		f.Eq("is_featured", raw == "true")
	}

	order := query.OrderClause(c.Query("sortBy", "createdAt"), c.Query("sortOrder", "desc"), query.ProductSortColumns, "created_at")

	products := make([]models.Product, 0)
	var total int64

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		tx := f.Apply(h.DB.WithContext(ctx).Model(&models.Product{}))
		return tx.Order(order).Limit(pg.Limit).Offset(pg.Offset).Find(&products).Error
	})
	g.Go(func() error {
		return f.Apply(h.DB.WithContext(ctx).Model(&models.Product{})).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{
		"products": products,
		"total":    total,
		"meta":     models.NewPaginationMeta(pg.Page, pg.Limit, total),
	})
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	h.recordView(product.ID)

	return c.JSON(product)
}

// GetProductBySlug - GET /api/products/slug/:slug
func (h *ProductHandler) GetProductBySlug(c *fiber.Ctx) error {
	var product models.Product
	if err := h.DB.Where("slug = ?", c.Params("slug")).First(&product).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	h.recordView(product.ID)

	return c.JSON(product)
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if details := validateProductRequest(&req); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data", "errors": details})
	}

	product := models.Product{
		Name:        *req.Name,
		Slug:        *req.Slug,
		Description: *req.Description,
		CategoryID:  req.CategoryID,
		IsActive:    true,
		Price:       "Request Quote",
	}
	if req.ShortDescription != nil {
		product.ShortDescription = *req.ShortDescription
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Specifications != nil {
		product.Specifications = *req.Specifications
	}
	if req.Volume != nil {
		product.Volume = *req.Volume
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.BrixLevel != nil {
		product.BrixLevel = *req.BrixLevel
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}

	if err := h.DB.Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slug already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct - PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Images != nil {
		updates["images"] = *req.Images
	}
	if req.Specifications != nil {
		updates["specifications"] = *req.Specifications
	}
	if req.Volume != nil {
		updates["volume"] = *req.Volume
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.BrixLevel != nil {
		updates["brix_level"] = *req.BrixLevel
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&product).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slug already exists"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
		}
		// Re-read so the response reflects column defaults and updated_at
		if err := h.DB.First(&product, id).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
		}
	}

	return c.JSON(product)
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// recordView bumps the stored view count. A failed bump never fails the
// detail request.
func (h *ProductHandler) recordView(id uint) {
	err := h.DB.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		log.Printf("Failed to record product view for %d: %v", id, err)
	}
}

func validateProductRequest(req *ProductRequest) []models.ErrorDetail {
	var details []models.ErrorDetail
	if req.Name == nil || *req.Name == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "name", Message: "Name is required"})
	}
	if req.Slug == nil || *req.Slug == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "slug", Message: "Slug is required"})
	}
	if req.Description == nil || *req.Description == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "description", Message: "Description is required"})
	}
	return details
}
