package config

import (
	"log"

	"github.com/Ind527/sultan1/models"
	"github.com/Ind527/sultan1/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedAdminUser creates the initial back-office account when no user
// exists yet. Intended for development only.
func SeedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	password, err := utils.HashPassword("admin123")
	if err != nil {
		log.Printf("Failed to hash seed password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: password,
		Role:     "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}

	log.Printf("Admin user seeded: %s (ID: %d)", admin.Username, admin.ID)
}

// SeedSampleData seeds the catalog with starter categories and products.
// Skipped entirely once any product exists.
func SeedSampleData(db *gorm.DB) {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding sample catalog data...")

	categories := []models.Category{
		{
			Name:        "Grains & Cereals",
			Slug:        "grains-cereals",
			Description: "High-quality grains and cereals for export",
		},
		{
			Name:        "Spices & Herbs",
			Slug:        "spices-herbs",
			Description: "Premium spices and herbs from around the world",
		},
		{
			Name:        "Fruits & Vegetables",
			Slug:        "fruits-vegetables",
			Description: "Fresh and dried fruits and vegetables",
		},
	}

	for i := range categories {
		if err := db.Where("slug = ?", categories[i].Slug).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Printf("Failed to seed category %s: %v", categories[i].Slug, err)
			return
		}
	}

	products := []models.Product{
		{
			Name:             "Premium Basmati Rice",
			Slug:             "premium-basmati-rice",
			ShortDescription: "Long-grain aromatic rice with exceptional quality",
			Description:      "Our Premium Basmati Rice is sourced from the finest fields and processed using state-of-the-art technology.",
			CategoryID:       &categories[0].ID,
			Weight:           "25kg, 50kg bags",
			Volume:           "1000+ tons/month",
			IsActive:         true,
			IsFeatured:       true,
			Rating:           decimal.RequireFromString("4.8"),
		},
		{
			Name:             "Organic Black Pepper",
			Slug:             "organic-black-pepper",
			ShortDescription: "Premium organic black pepper with rich flavor",
			Description:      "Our Organic Black Pepper is sourced from sustainable farms and processed with traditional methods.",
			CategoryID:       &categories[1].ID,
			Weight:           "1kg, 5kg, 25kg",
			Volume:           "500+ tons/month",
			IsActive:         true,
			IsFeatured:       true,
			Rating:           decimal.RequireFromString("4.9"),
		},
		{
			Name:             "Fresh Dragon Fruit",
			Slug:             "fresh-dragon-fruit",
			ShortDescription: "Exotic dragon fruit with exceptional sweetness",
			Description:      "Our Fresh Dragon Fruit is carefully harvested from premium orchards and handled with advanced cold chain technology.",
			CategoryID:       &categories[2].ID,
			Weight:           "2-5kg per box",
			Volume:           "200+ tons/month",
			BrixLevel:        "18-22",
			IsActive:         true,
			IsFeatured:       true,
			Rating:           decimal.RequireFromString("4.7"),
		},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", product.Slug, err)
		}
	}

	log.Println("Sample data seeding complete")
}
