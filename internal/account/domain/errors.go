package domain

import "GameAdmin/modules/kit/errx"

// Code 表示领域错误码（对外语义的唯一来源之一）。
//
// 约定：
// - 领域层只关心“是什么错”（code）以及“业务上下文”（data）
// - cause 仅用于溯源/日志，不参与对外语义
type Code = errx.Code

const (
	CodeUserNotFound      Code = "ACCOUNT_USER_NOT_FOUND"
	CodeUserExist         Code = "ACCOUNT_USER_EXIST"
	CodeLastLoginNotFound Code = "ACCOUNT_LAST_LOGIN_NOT_FOUND"
	// CodeSystemUnavailable 复用 kit 的统一系统码。
	CodeSystemUnavailable Code = errx.CodeUnavailable
)

type Error = errx.Error

var (
	ErrUserNotFound      = errx.NewBiz(CodeUserNotFound, "")
	ErrUserExist         = errx.NewBiz(CodeUserExist, "")
	ErrLastLoginNotFound = errx.NewBiz(CodeLastLoginNotFound, "")
	ErrSystemUnavailable = errx.ErrUnavailable
)
