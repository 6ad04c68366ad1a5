package repo

import (
	"GameAdmin/internal/account/domain"
	"context"

	"gorm.io/gorm"
)

// LoginHistoryRepo 只追加，不提供修改与删除。
type LoginHistoryRepo struct {
	db *gorm.DB
}

func NewLoginHistoryRepo(db *gorm.DB) *LoginHistoryRepo {
	return &LoginHistoryRepo{db: db}
}

func (r *LoginHistoryRepo) Save(ctx context.Context, history domain.LoginHistory) error {
	history.Id = 0
	if err := r.db.WithContext(ctx).Create(&history).Error; err != nil {
		return domain.ErrSystemUnavailable.
			WithData("uid", history.UId).
			WithData("state", history.State).
			WithCause(err)
	}
	return nil
}
