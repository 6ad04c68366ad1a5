package grpc

import (
	"GameAdmin/modules/kit/tracex"
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc/metadata"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestServer_健康检查(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := NewServer(nil)
	s.SetServing("", true)
	go func() { _ = s.Serve(lis) }()
	defer s.Stop()

	conn, client, err := DialHealth(lis.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status: got=%v", resp.GetStatus())
	}

	s.SetServing("", false)
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("status: got=%v", resp.GetStatus())
	}
}

func TestTrace_元数据透传(t *testing.T) {
	ctx := tracex.WithTraceID(context.Background(), "t-1")
	ctx = tracex.WithSpanID(ctx, "admin")

	out := traceToOutgoing(ctx)
	md, ok := metadata.FromOutgoingContext(out)
	if !ok {
		t.Fatalf("missing outgoing metadata")
	}

	in := traceFromIncoming(metadata.NewIncomingContext(context.Background(), md))
	if tid, _ := tracex.TraceIDFrom(in); tid != "t-1" {
		t.Fatalf("trace id: got=%q", tid)
	}
	if sid, _ := tracex.SpanIDFrom(in); sid != "admin" {
		t.Fatalf("span id: got=%q", sid)
	}
}

func TestTrace_缺少元数据时生成trace(t *testing.T) {
	in := traceFromIncoming(context.Background())
	tid, ok := tracex.TraceIDFrom(in)
	if !ok || len(tid) != 32 {
		t.Fatalf("trace id: got=%q", tid)
	}
	if _, ok := tracex.SpanIDFrom(in); ok {
		t.Fatalf("span id should be absent")
	}

	md := metadata.Pairs(mdRequestID, "  ", mdRequestID, "req-9")
	in = traceFromIncoming(metadata.NewIncomingContext(context.Background(), md))
	if tid, _ := tracex.TraceIDFrom(in); tid != "req-9" {
		t.Fatalf("trace id: got=%q", tid)
	}
}
