package transport

import (
	"GameAdmin/modules/kit/logx"
	"GameAdmin/modules/kit/tracex"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SpanAdmin 是本服务写入 span_id 的固定值。
const SpanAdmin = "admin"

// AccessLog 是请求级日志上下文，覆盖 HTTP 与 WS 两种入口。
type AccessLog struct {
	mu          sync.Mutex
	bizCode     BizCode
	errorReason string
	startTime   time.Time
	action      string
}

type accessLogKey struct{}

// NewContext 创建带 AccessLog 的新 context（保留父 context 的取消/超时信号）。
// traceID 为空时生成新的 trace_id。
func NewContext(parent context.Context, action, traceID string) context.Context {
	ctx := parent
	if ctx == nil {
		ctx = context.Background()
	}
	if action == "" {
		action = "unknown"
	}
	if traceID == "" {
		traceID = tracex.NewTraceID()
	}
	ctx = tracex.WithTraceID(ctx, traceID)
	ctx = tracex.WithSpanID(ctx, SpanAdmin)

	al := &AccessLog{
		bizCode:   BizCode(SystemError),
		startTime: time.Now(),
		action:    action,
	}
	return context.WithValue(ctx, accessLogKey{}, al)
}

func FromContext(ctx context.Context) *AccessLog {
	if ctx == nil {
		return nil
	}
	al, _ := ctx.Value(accessLogKey{}).(*AccessLog)
	return al
}

func SetBizCode(ctx context.Context, code BizCode) {
	if al := FromContext(ctx); al != nil {
		al.mu.Lock()
		al.bizCode = code
		al.mu.Unlock()
	}
}

// SetErrorReason 设置 access 日志错误原因（失败场景）。
func SetErrorReason(ctx context.Context, reason string) {
	if reason == "" {
		return
	}
	if al := FromContext(ctx); al != nil {
		al.mu.Lock()
		al.errorReason = reason
		al.mu.Unlock()
	}
}

// WriteAccessLog 输出访问日志（在中间件末尾调用）。
func WriteAccessLog(ctx context.Context, log logx.Logger, extra ...zap.Field) {
	al := FromContext(ctx)
	if al == nil || log == nil {
		return
	}
	al.mu.Lock()
	code, reason := al.bizCode, al.errorReason
	al.mu.Unlock()

	fields := []zap.Field{zap.Duration("latency", time.Since(al.startTime))}
	if code == BizCode(OK) {
		fields = append(fields, zap.String("result", "success"))
	} else {
		fields = append(fields, zap.String("result", "failure"))
		if reason != "" {
			fields = append(fields, zap.String("error_reason", reason))
		}
	}
	fields = append(fields, extra...)
	logx.ReportAccess(ctx, log, al.action, int(code), fields...)
}
