package logx

import (
	"context"

	"go.uber.org/zap"
)

// Logger 是各层共用的日志接口：结构化字段 + ctx 中的 trace/span。
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	WithContext(ctx context.Context) Logger
	// With 返回绑定了固定字段（如 module）的子 Logger。
	With(fields ...zap.Field) Logger
}

// Nop 返回丢弃所有输出的 Logger，测试里使用。
func Nop() Logger {
	return NewZapLogger(nil)
}
