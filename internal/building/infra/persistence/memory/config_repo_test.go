package memory

import (
	"GameAdmin/internal/building/domain"
	"context"
	"errors"
	"testing"
)

func TestConfigRepo_类型唯一与不存在(t *testing.T) {
	ctx := context.Background()
	r := NewConfigRepo()

	if err := r.Create(ctx, domain.Configuration{ID: 1, BuildingType: domain.Farm}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, domain.Configuration{ID: 2, BuildingType: domain.Farm}); !errors.Is(err, domain.ErrTypeExist) {
		t.Fatalf("期望 ErrTypeExist, got=%v", err)
	}
	if err := r.Delete(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, got=%v", err)
	}
	if err := r.Update(ctx, domain.Configuration{ID: 99}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, got=%v", err)
	}
	if err := r.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cs, _ := r.List(ctx); len(cs) != 0 {
		t.Fatalf("删除后应为空: %v", cs)
	}
}
