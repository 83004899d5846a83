package models

import (
	"time"
)

// Contact message status values
const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status string `gorm:"default:'unread';size:20" json:"status"` // unread, read, replied

	CreatedAt time.Time `json:"created_at"`
}

func ValidMessageStatus(s string) bool {
	return s == MessageStatusUnread || s == MessageStatusRead || s == MessageStatusReplied
}
