package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 对客户端暴露的业务码（响应体 code 字段）。
const (
	OK           = 0
	InvalidParam = 1
	UserExist    = 2
	PwdIncorrect = 3
	TokenInvalid = 4

	ConfigInvalid   = 10
	ConfigTypeExist = 11
	ConfigNotFound  = 12

	RateLimited = 429
	SystemError = 500
	Unavailable = 503
)
