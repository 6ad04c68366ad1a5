package app

import "GameAdmin/modules/kit/errx"

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{
		Code:    c,
		Message: m,
	}
}

var (
	// 业务拒绝 reason，只进日志，不直接返回给客户端。
	ReasonLoginMissingField   = NewReason("LOGIN_MISSING_FIELD", "用户名或密码为空")
	ReasonLoginUserNotFound   = NewReason("LOGIN_USER_NOT_FOUND", "用户不存在")
	ReasonLoginUserDisabled   = NewReason("LOGIN_USER_DISABLED", "用户已禁用")
	ReasonLoginPwdMismatch    = NewReason("LOGIN_PASSWORD_MISMATCH", "密码错误")
	ReasonRegisterInvalid     = NewReason("REGISTER_INVALID_FIELD", "注册参数不合法")
	ReasonRegisterUserExist   = NewReason("REGISTER_USERNAME_TAKEN", "用户名已存在")
	ReasonRegisterEmailExist  = NewReason("REGISTER_EMAIL_TAKEN", "邮箱已存在")
	ReasonTokenUnverifiable   = NewReason("TOKEN_UNVERIFIABLE", "token 校验失败")
	ReasonTokenSuperseded     = NewReason("TOKEN_SUPERSEDED", "token 已被新登录取代")
	ReasonTokenLoggedOut      = NewReason("TOKEN_LOGGED_OUT", "token 已登出")
	ReasonTokenUserNotAllowed = NewReason("TOKEN_USER_NOT_ALLOWED", "token 对应用户不存在或已禁用")
)

var (
	// 技术错误 reason，用于日志与排障。
	ReasonUserRepoUnavailable   = NewReason("USER_REPO_UNAVAILABLE", "用户存储库不可用")
	ReasonTokenIssue            = NewReason("TOKEN_ISSUE", "令牌签发失败")
	ReasonPasswordHash          = NewReason("PASSWORD_HASH_FAIL", "密码哈希失败")
	ReasonLoginHistoryWriteFail = NewReason("LOGIN_HISTORY_WRITE_FAIL", "登录历史写入失败")
	ReasonLoginLastReadFail     = NewReason("LOGIN_LAST_READ_FAIL", "最后登录读取失败")
	ReasonLoginLastWriteFail    = NewReason("LOGIN_LAST_WRITE_FAIL", "最后登录写入失败")
	ReasonUserCreateFail        = NewReason("USER_CREATE_FAIL", "用户创建失败")
)

// GetErrorReasonCode 取出错误上挂的 reason code。
func GetErrorReasonCode(err error) string {
	if e, ok := errx.From(err); ok {
		return e.Reason()
	}
	return ""
}
