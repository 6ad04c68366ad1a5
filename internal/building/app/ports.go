package app

import (
	"GameAdmin/internal/building/domain"
	"context"
)

// ConfigRepo 由 mysql / mongodb / memory 三种存储实现。
type ConfigRepo interface {
	List(ctx context.Context) ([]domain.Configuration, error)
	Get(ctx context.Context, id int64) (domain.Configuration, error)
	// Create 类型已存在时返回 domain.ErrTypeExist。
	Create(ctx context.Context, c domain.Configuration) error
	Update(ctx context.Context, c domain.Configuration) error
	// Delete id 不存在时返回 domain.ErrNotFound。
	Delete(ctx context.Context, id int64) error
}

// EventPublisher 把变更推给在线连接，失败不影响主流程。
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.ConfigEvent)
}

type IDGenerator interface {
	NextID() int64
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.ConfigEvent) {}
