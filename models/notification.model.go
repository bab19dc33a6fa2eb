package models

import "gorm.io/gorm"

// Notification is an unread-by-default in-app message shown on the
// user's dashboard bell.
type Notification struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Read        bool   `json:"read" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
