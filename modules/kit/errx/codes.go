package errx

// 这里定义“跨服务统一”的系统类错误码。
//
// 约束：
// - 这些错误码用于“系统/技术类错误”归一化（便于告警、观测、排障）
// - 业务域错误码（例如 ACCOUNT_USER_EXIST）必须由各业务自行定义，不允许在 kit 里集中

const (
	// CodeInternal 表示服务内部不可预期错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 表示依赖不可用（MySQL/MongoDB/网络异常等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeRateLimited 表示被限流。
	CodeRateLimited Code = "RATE_LIMITED"
	// CodeReqParamError 表示请求参数错误（无法解析、缺字段）。
	CodeReqParamError Code = "REQ_PARAM_ERROR"
)

// 统一系统类哨兵错误（允许 WithData/WithCause 派生新对象）。
var (
	ErrInternal    = NewSys(CodeInternal, "internal server error")
	ErrUnavailable = NewSys(CodeUnavailable, "service unavailable")
	ErrRateLimited = NewBiz(CodeRateLimited, "too many requests")
	ErrReqParamERR = NewBiz(CodeReqParamError, "invalid request parameters")
)
