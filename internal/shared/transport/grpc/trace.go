package grpc

import (
	"GameAdmin/modules/kit/tracex"
	"context"
	"strings"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// 与 HTTP 入口的 X-Request-ID 保持同名，探针或网关可以直接透传。
const (
	mdRequestID = "x-request-id"
	mdSpanID    = "x-span-id"
)

// UnaryServerTraceInterceptor 从 metadata 恢复 trace/span；没有时生成新的 trace_id。
func UnaryServerTraceInterceptor() gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		return handler(traceFromIncoming(ctx), req)
	}
}

// StreamServerTraceInterceptor 覆盖 health Watch 这类流式调用。
func StreamServerTraceInterceptor() gogrpc.StreamServerInterceptor {
	return func(srv any, ss gogrpc.ServerStream, _ *gogrpc.StreamServerInfo, handler gogrpc.StreamHandler) error {
		return handler(srv, &tracedStream{ServerStream: ss, ctx: traceFromIncoming(ss.Context())})
	}
}

// UnaryClientTraceInterceptor 把当前 trace/span 写入 outgoing metadata。
func UnaryClientTraceInterceptor() gogrpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *gogrpc.ClientConn,
		invoker gogrpc.UnaryInvoker, opts ...gogrpc.CallOption) error {
		return invoker(traceToOutgoing(ctx), method, req, reply, cc, opts...)
	}
}

type tracedStream struct {
	gogrpc.ServerStream
	ctx context.Context
}

func (s *tracedStream) Context() context.Context {
	return s.ctx
}

func traceToOutgoing(ctx context.Context) context.Context {
	var kv []string
	if id, ok := tracex.TraceIDFrom(ctx); ok {
		kv = append(kv, mdRequestID, id)
	}
	if id, ok := tracex.SpanIDFrom(ctx); ok {
		kv = append(kv, mdSpanID, id)
	}
	if len(kv) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}

func traceFromIncoming(ctx context.Context) context.Context {
	md, _ := metadata.FromIncomingContext(ctx)
	traceID := firstValue(md, mdRequestID)
	if traceID == "" {
		traceID = tracex.NewTraceID()
	}
	ctx = tracex.WithTraceID(ctx, traceID)
	if span := firstValue(md, mdSpanID); span != "" {
		ctx = tracex.WithSpanID(ctx, span)
	}
	return ctx
}

func firstValue(md metadata.MD, key string) string {
	for _, v := range md.Get(key) {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
