package domain

import "GameAdmin/modules/kit/errx"

type Code = errx.Code

const (
	CodeInvalid           Code = "BUILDING_CONFIG_INVALID"
	CodeTypeExist         Code = "BUILDING_TYPE_EXIST"
	CodeNotFound          Code = "BUILDING_CONFIG_NOT_FOUND"
	CodeSystemUnavailable Code = errx.CodeUnavailable
)

type Error = errx.Error

const (
	MsgTypeExist = "Building type is already configured."
	MsgNotFound  = "Configuration not found."
)

var (
	ErrInvalid           = errx.NewBiz(CodeInvalid, "")
	ErrTypeExist         = errx.NewBiz(CodeTypeExist, MsgTypeExist)
	ErrNotFound          = errx.NewBiz(CodeNotFound, MsgNotFound)
	ErrSystemUnavailable = errx.ErrUnavailable
)
