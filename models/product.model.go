package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"size:255;not null" json:"name"`
	Slug             string `gorm:"unique;not null;size:255" json:"slug"`
	Description      string `gorm:"type:text;not null" json:"description"`
	ShortDescription string `gorm:"size:500" json:"short_description"`
	CategoryID       *uint  `gorm:"index" json:"category_id"`

	Images         []string          `gorm:"serializer:json" json:"images"`
	Specifications map[string]string `gorm:"serializer:json" json:"specifications"`

	// Export details, kept free-text (buyers quote per shipment)
	Volume    string `gorm:"size:100" json:"volume"` // e.g. "20-40 tons/month"
	Weight    string `gorm:"size:100" json:"weight"` // e.g. "18-25 kg/box"
	BrixLevel string `gorm:"size:50" json:"brix_level"`
	Price     string `gorm:"size:100;default:'Request Quote'" json:"price"`

	IsActive   bool            `gorm:"not null;default:true" json:"is_active"`
	IsFeatured bool            `gorm:"not null;default:false" json:"is_featured"`
	Rating     decimal.Decimal `gorm:"type:numeric(3,2);default:0" json:"rating"`
	ViewCount  int             `gorm:"not null;default:0" json:"view_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
