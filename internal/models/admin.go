package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin back-office account table
type Admin struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                         // primary key
	Username           string         `gorm:"uniqueIndex;not null" json:"username"`         // admin account
	PasswordHash       string         `gorm:"not null" json:"-"`                            // password hash, never returned
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`                  // token version for bulk invalidation
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                               // tokens issued before this are invalid
	IsSuper            bool           `gorm:"not null;default:false;index" json:"is_super"` // super admin bypasses RBAC
	LastLoginAt        *time.Time     `json:"last_login_at"`                                // last login time
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                      // creation time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                               // soft delete time
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}
