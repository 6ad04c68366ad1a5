package memory

import (
	"GameAdmin/internal/building/domain"
	"context"
	"sync"
)

// ConfigRepo 是建筑配置的内存实现，storage.driver=memory 与测试使用。
type ConfigRepo struct {
	mu   sync.RWMutex
	byID map[int64]domain.Configuration
}

func NewConfigRepo() *ConfigRepo {
	return &ConfigRepo{byID: make(map[int64]domain.Configuration)}
}

func (r *ConfigRepo) List(_ context.Context) ([]domain.Configuration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Configuration, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *ConfigRepo) Get(_ context.Context, id int64) (domain.Configuration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return domain.Configuration{}, domain.ErrNotFound.WithData("id", id)
	}
	return c, nil
}

func (r *ConfigRepo) Create(_ context.Context, c domain.Configuration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, exist := range r.byID {
		if exist.BuildingType == c.BuildingType {
			return domain.ErrTypeExist.WithData("buildingType", string(c.BuildingType))
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *ConfigRepo) Update(_ context.Context, c domain.Configuration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound.WithData("id", c.ID)
	}
	r.byID[c.ID] = c
	return nil
}

func (r *ConfigRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound.WithData("id", id)
	}
	delete(r.byID, id)
	return nil
}
