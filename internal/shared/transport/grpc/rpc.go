package grpc

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DialHealth 建立到管理服务的 grpc 连接并返回健康检查 client。
func DialHealth(addr string) (*grpc.ClientConn, healthpb.HealthClient, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(UnaryClientTraceInterceptor()),
	}
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s failed: %w", addr, err)
	}
	return conn, healthpb.NewHealthClient(conn), nil
}
