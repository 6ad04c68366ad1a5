package mysql

import (
	"GameAdmin/internal/building/domain"
	"GameAdmin/internal/building/infra/persistence/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ConfigRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) *ConfigRepo {
	return &ConfigRepo{db: db}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Configuration{})
}

func (r *ConfigRepo) List(ctx context.Context) ([]domain.Configuration, error) {
	var rows []model.Configuration
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	out := make([]domain.Configuration, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToDomain())
	}
	return out, nil
}

func (r *ConfigRepo) Get(ctx context.Context, id int64) (domain.Configuration, error) {
	var m model.Configuration
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	switch {
	case err == nil:
		return m.ToDomain(), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.Configuration{}, domain.ErrNotFound.WithData("id", id)
	default:
		return domain.Configuration{}, domain.ErrSystemUnavailable.WithData("id", id).WithCause(err)
	}
}

func (r *ConfigRepo) Create(ctx context.Context, c domain.Configuration) error {
	row := model.ToRow(c)
	err := r.db.WithContext(ctx).Create(&row).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrTypeExist.WithData("buildingType", row.BuildingType).WithCause(err)
	default:
		return domain.ErrSystemUnavailable.WithData("buildingType", row.BuildingType).WithCause(err)
	}
}

func (r *ConfigRepo) Update(ctx context.Context, c domain.Configuration) error {
	res := r.db.WithContext(ctx).Model(&model.Configuration{}).Where("id = ?", c.ID).Updates(map[string]any{
		"building_cost":     c.BuildingCost,
		"construction_time": c.ConstructionTime,
		"mtime":             c.Mtime,
	})
	if res.Error != nil {
		return domain.ErrSystemUnavailable.WithData("id", c.ID).WithCause(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound.WithData("id", c.ID)
	}
	return nil
}

func (r *ConfigRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Configuration{})
	if res.Error != nil {
		return domain.ErrSystemUnavailable.WithData("id", id).WithCause(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound.WithData("id", id)
	}
	return nil
}
