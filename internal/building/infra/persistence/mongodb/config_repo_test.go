package mongodb

import (
	"GameAdmin/internal/building/domain"
	"context"
	"errors"
	"testing"
)

func TestConfigRepo_未初始化集合返回系统错误(t *testing.T) {
	r := NewConfigRepo(nil)
	ctx := context.Background()

	if _, err := r.List(ctx); !errors.Is(err, domain.ErrSystemUnavailable) {
		t.Fatalf("list: %v", err)
	}
	if err := r.Create(ctx, domain.Configuration{ID: 1, BuildingType: domain.Farm}); !errors.Is(err, domain.ErrSystemUnavailable) {
		t.Fatalf("create: %v", err)
	}
	if err := r.Delete(ctx, 1); !errors.Is(err, domain.ErrSystemUnavailable) {
		t.Fatalf("delete: %v", err)
	}
	if err := r.EnsureIndexes(ctx); !errors.Is(err, errNilCollection) {
		t.Fatalf("indexes: %v", err)
	}
}
