package models

import (
	"strings"

	"github.com/finotty/duqueLoja/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	fallbackAdminUsername = "admin"
	fallbackAdminPassword = "admin123"
)

// InitDefaultAdmin bootstraps the default back-office account. When
// admins already exist it only re-asserts super rights on "admin".
func InitDefaultAdmin(username, password string) error {
	var count int64
	DB.Model(&Admin{}).Count(&count)
	if count > 0 {
		err := DB.Model(&Admin{}).Where("username = ?", fallbackAdminUsername).Update("is_super", true).Error
		if err != nil {
			logger.Warnw("ensure_default_admin_super_failed", "error", err)
		}
		return nil
	}

	if username == "" {
		username = fallbackAdminUsername
	}
	if password == "" {
		password = fallbackAdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
		IsSuper:      strings.EqualFold(strings.TrimSpace(username), fallbackAdminUsername),
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == fallbackAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "username", username, "password", password)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}
	return nil
}
