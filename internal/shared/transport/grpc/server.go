package grpc

import (
	"GameAdmin/modules/kit/logx"
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server 只承载健康检查服务，供编排系统探活。
type Server struct {
	srv    *gogrpc.Server
	health *health.Server
	log    logx.Logger
}

func NewServer(l logx.Logger) *Server {
	if l == nil {
		l = logx.Nop()
	}
	srv := gogrpc.NewServer(
		gogrpc.ChainUnaryInterceptor(UnaryServerTraceInterceptor(), unaryLogInterceptor(l)),
		gogrpc.ChainStreamInterceptor(StreamServerTraceInterceptor()),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	return &Server{srv: srv, health: hs, log: l}
}

// SetServing 设置 service 的健康状态；service 为空表示整体状态。
func (s *Server) SetServing(service string, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, status)
}

// Serve 阻塞直到 listener 关闭。
func (s *Server) Serve(lis net.Listener) error {
	return s.srv.Serve(lis)
}

// Stop 先把状态置为 NOT_SERVING，再优雅停止。
func (s *Server) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}

func unaryLogInterceptor(l logx.Logger) gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			l.WithContext(ctx).Warn("grpc call failed", append(fields, zap.Error(err))...)
		} else {
			l.WithContext(ctx).Debug("grpc call", fields...)
		}
		return resp, err
	}
}
