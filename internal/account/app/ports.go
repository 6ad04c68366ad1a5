package app

import (
	"GameAdmin/internal/account/domain"
	"context"
)

type UserRepo interface {
	GetUserByUserName(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUId(ctx context.Context, uid int) (*domain.User, error)
	// Create 写入新用户并回填 UId；唯一键冲突返回 domain.ErrUserExist。
	Create(ctx context.Context, u *domain.User) error
}

type LoginHistoryRepo interface {
	Save(ctx context.Context, history domain.LoginHistory) error
}

type LoginLastRepo interface {
	GetLoginLast(ctx context.Context, uid int) (domain.LoginLast, error)
	Save(ctx context.Context, ll domain.LoginLast) error
}

// TokenIssuer 签发与校验 bearer token。
type TokenIssuer interface {
	Award(uid int) (string, error)
	Verify(token string) (int, error)
}

type PwdHasher func(pwd string) (string, error)

type PwdChecker func(hash, pwd string) bool
