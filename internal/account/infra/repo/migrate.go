package repo

import (
	"GameAdmin/internal/account/domain"

	"gorm.io/gorm"
)

// AutoMigrate 建表：user_info / login_history / login_last。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.LoginHistory{}, &domain.LoginLast{})
}
