package models

import (
	"time"
)

// Quote status values
const (
	QuoteStatusPending   = "pending"
	QuoteStatusProcessed = "processed"
	QuoteStatusCompleted = "completed"
)

type Quote struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:100;not null" json:"full_name"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Company  string `gorm:"size:100" json:"company"`
	Phone    string `gorm:"size:30" json:"phone"`
	Country  string `gorm:"size:100;not null" json:"country"`

	ProductCategory   string `gorm:"size:100" json:"product_category"`
	ProductDetails    string `gorm:"type:text;not null" json:"product_details"`
	EstimatedQuantity string `gorm:"size:100" json:"estimated_quantity"`
	DeliveryPort      string `gorm:"size:100" json:"delivery_port"`

	Status string `gorm:"default:'pending';size:20" json:"status"` // pending, processed, completed
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidQuoteStatus(s string) bool {
	return s == QuoteStatusPending || s == QuoteStatusProcessed || s == QuoteStatusCompleted
}
