package app

import (
	"GameAdmin/internal/building/domain"
	"GameAdmin/modules/kit/errx"
)

type Code = errx.Code

type Error = errx.Error

// 业务错误直接沿用领域错误，对外语义一致；系统错误统一为 unavailable。
var (
	ErrInvalid        = domain.ErrInvalid
	ErrTypeExist      = domain.ErrTypeExist
	ErrNotFound       = domain.ErrNotFound
	ErrInvalidParam   = errx.ErrReqParamERR
	ErrUnavailable    = errx.ErrUnavailable
	ErrInternalServer = errx.ErrInternal
)
