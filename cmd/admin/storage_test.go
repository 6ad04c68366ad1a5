package main

import (
	"GameAdmin/internal/shared/serverconfig"
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestOpenStorage_内存模式(t *testing.T) {
	var cfg serverconfig.Config
	cfg.Storage.Driver = serverconfig.DriverMemory
	s, err := openStorage(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if s.users == nil || s.history == nil || s.last == nil || s.configs == nil {
		t.Fatalf("all repos should be set: %+v", s)
	}
	cs, err := s.configs.List(context.Background())
	if err != nil || len(cs) != 0 {
		t.Fatalf("list=%v err=%v", cs, err)
	}
}

func TestOpenStorage_未知驱动(t *testing.T) {
	var cfg serverconfig.Config
	cfg.Storage.Driver = "redis"
	if _, err := openStorage(cfg, zap.NewNop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestStorage_Close逆序执行(t *testing.T) {
	var order []int
	s := &storage{closers: []func(){
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	}}
	s.Close()
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("order=%v", order)
	}
}
