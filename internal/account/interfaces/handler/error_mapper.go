package handler

import (
	"GameAdmin/internal/account/app"
	"GameAdmin/internal/shared/transport"
	"GameAdmin/modules/kit/errx"
	"errors"
)

// toBizCode 把应用层错误映射为响应体里的业务码与提示。
func toBizCode(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrInvalidParam):
		return transport.InvalidParam, msgOf(err, "invalid request parameters")
	case errors.Is(err, app.ErrUserExist):
		return transport.UserExist, msgOf(err, "user already exists")
	case errors.Is(err, app.ErrInvalidCredentials):
		return transport.PwdIncorrect, msgOf(err, "invalid credentials")
	case errors.Is(err, app.ErrTokenInvalid):
		return transport.TokenInvalid, msgOf(err, "token invalid")
	case errors.Is(err, errx.ErrRateLimited):
		return transport.RateLimited, "too many requests"
	case errors.Is(err, app.ErrUnavailable):
		return transport.Unavailable, "service unavailable"
	default:
		return transport.SystemError, "internal server error"
	}
}

func msgOf(err error, fallback string) string {
	if e, ok := errx.From(err); ok && e.Msg() != "" {
		return e.Msg()
	}
	return fallback
}
