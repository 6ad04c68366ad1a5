package repo

import (
	"GameAdmin/internal/account/domain"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 同一 uid 冲突时覆盖的列；id 与 uid 保持不变。
var loginLastUpsertColumns = []string{"login_time", "logout_time", "ip", "session", "is_logout", "hardware"}

type LoginLastRepo struct {
	db *gorm.DB
}

func NewLoginLastRepo(db *gorm.DB) *LoginLastRepo {
	return &LoginLastRepo{
		db: db,
	}
}

func (r *LoginLastRepo) GetLoginLast(ctx context.Context, uid int) (domain.LoginLast, error) {
	var ll domain.LoginLast
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&ll).Error
	if err == nil {
		return ll, nil
	}
	return domain.LoginLast{}, translateErr(err, domain.ErrLastLoginNotFound, "uid", uid)
}

// Save 以 uid 为冲突键 upsert，同一用户并发首次登录也只落一行。
func (r *LoginLastRepo) Save(ctx context.Context, ll domain.LoginLast) error {
	err := upsertLoginLast(r.db.WithContext(ctx), &ll).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("uid", ll.UId).WithCause(err)
	}
	return nil
}

func upsertLoginLast(tx *gorm.DB, ll *domain.LoginLast) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns(loginLastUpsertColumns),
	}).Create(ll)
}
