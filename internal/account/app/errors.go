package app

import "GameAdmin/modules/kit/errx"

// Code 表示应用层错误码（通常更贴近“业务语义/对外协议”）。
type Code = errx.Code

const (
	CodeInvalidCredentials Code = "AUTH_INVALID_CREDENTIAL"
	CodeUserExist          Code = "AUTH_USER_EXIST"
	CodeTokenInvalid       Code = "AUTH_TOKEN_INVALID"
	CodeInvalidParam       Code = errx.CodeReqParamError
	CodeInternalServer     Code = errx.CodeInternal
	CodeUnavailable        Code = errx.CodeUnavailable
)

// Error 复用通用错误模型：对外语义(code/msg)、上下文(data)、溯源链(cause)、系统错误一次栈(stack)。
type Error = errx.Error

// 常用错误定义（哨兵错误）：禁止直接修改其 data/cause（通过 WithData/WithCause 派生新对象）。
var (
	ErrInvalidCredentials = errx.NewBiz(CodeInvalidCredentials, "Login failed. Please check your credentials.")
	ErrUserExist          = errx.NewBiz(CodeUserExist, "Registration failed. Try a different username and e-mail address.")
	ErrTokenInvalid       = errx.NewBiz(CodeTokenInvalid, "token is invalid or expired")
	ErrInvalidParam       = errx.ErrReqParamERR
	ErrInternalServer     = errx.ErrInternal
	ErrUnavailable        = errx.ErrUnavailable
)

const dataKeyFields = "fields"

// FieldErrors 取出参数校验失败时逐字段的提示（字段名为 json 名）。
func FieldErrors(err error) map[string]string {
	e, ok := errx.From(err)
	if !ok {
		return nil
	}
	fields, _ := e.Data()[dataKeyFields].(map[string]string)
	return fields
}
