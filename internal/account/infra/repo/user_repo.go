package repo

import (
	"GameAdmin/internal/account/domain"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) GetUserByUserName(ctx context.Context, username string) (*domain.User, error) {
	return r.first(ctx, "username = ?", username, "username")
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email, "email")
}

func (r *UserRepo) GetUserByUId(ctx context.Context, uid int) (*domain.User, error) {
	return r.first(ctx, "uid = ?", uid, "uid")
}

func (r *UserRepo) first(ctx context.Context, cond string, arg any, key string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where(cond, arg).First(&user).Error
	if err == nil {
		return &user, nil
	}
	return nil, translateErr(err, domain.ErrUserNotFound, key, arg)
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUserExist.WithData("username", user.Username).WithCause(err)
	}
	return domain.ErrSystemUnavailable.WithData("username", user.Username).WithCause(err)
}

// translateErr 记录不存在 → notFound；其余是无法转换的技术错误，包装返回给上级。
func translateErr(err error, notFound *domain.Error, key string, value any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound.WithData(key, value)
	}
	return domain.ErrSystemUnavailable.WithData(key, value).WithCause(err)
}
