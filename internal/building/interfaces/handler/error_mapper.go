package handler

import (
	"GameAdmin/internal/building/app"
	"GameAdmin/internal/shared/transport"
	"GameAdmin/modules/kit/errx"
	"errors"
)

func toBizCode(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrInvalid):
		return transport.ConfigInvalid, msgOf(err, "invalid configuration")
	case errors.Is(err, app.ErrTypeExist):
		return transport.ConfigTypeExist, msgOf(err, "building type exists")
	case errors.Is(err, app.ErrNotFound):
		return transport.ConfigNotFound, msgOf(err, "configuration not found")
	case errors.Is(err, app.ErrInvalidParam):
		return transport.InvalidParam, msgOf(err, "invalid request parameters")
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
