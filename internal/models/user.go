package models

import (
	"time"

	"gorm.io/gorm"
)

// User customer table
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`              // primary key
	Email              string         `gorm:"uniqueIndex;not null" json:"email"` // email
	PasswordHash       string         `gorm:"not null" json:"-"`                 // password hash, never returned
	DisplayName        string         `gorm:"default:''" json:"display_name"`    // display name
	Locale             string         `gorm:"default:'pt-BR'" json:"locale"`     // language preference
	Status             string         `gorm:"default:'active'" json:"status"`    // account status
	Favorites          StringArray    `gorm:"type:json" json:"favorites"`        // favorited product names
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`       // token version for bulk invalidation
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                    // tokens issued before this are invalid
	LastLoginAt        *time.Time     `json:"last_login_at"`                     // last login time
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`           // creation time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`           // update time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete time
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}
