package app

import (
	"GameAdmin/internal/building/app/model"
	"GameAdmin/internal/building/domain"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type ConfigService struct {
	repo ConfigRepo
	ids  IDGenerator
	pub  EventPublisher
	now  func() time.Time
}

func NewConfigService(repo ConfigRepo, ids IDGenerator, pub EventPublisher) *ConfigService {
	if pub == nil {
		pub = nopPublisher{}
	}
	return &ConfigService{repo: repo, ids: ids, pub: pub, now: time.Now}
}

// List 按建筑类型展示顺序返回全部配置。
func (s *ConfigService) List(ctx context.Context) ([]domain.Configuration, error) {
	cs, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrUnavailable.WithReason(ReasonRepoReadFail).WithCause(err)
	}
	domain.SortByDisplayOrder(cs)
	return cs, nil
}

func (s *ConfigService) Types(ctx context.Context) (*model.TypesResp, error) {
	cs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.TypesResp{All: domain.AllTypes(), Available: domain.AvailableTypes(cs)}, nil
}

// AvailableTypes 尚未配置的类型，添加表单只提供这些选项。
func (s *ConfigService) AvailableTypes(ctx context.Context) ([]domain.BuildingType, error) {
	resp, err := s.Types(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Available, nil
}

func (s *ConfigService) Add(ctx context.Context, req model.AddReq, operator int) (*domain.Configuration, error) {
	t := domain.BuildingType(strings.TrimSpace(req.BuildingType))
	if err := domain.Validate(t, req.BuildingCost, req.ConstructionTime); err != nil {
		return nil, withReason(err, ReasonAddInvalid)
	}

	now := s.now()
	c := domain.Configuration{
		ID:               s.ids.NextID(),
		BuildingType:     t,
		BuildingCost:     req.BuildingCost,
		ConstructionTime: req.ConstructionTime,
		CreatedBy:        operator,
		Ctime:            now,
		Mtime:            now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrTypeExist) {
			return nil, ErrTypeExist.WithReason(ReasonAddTypeExist).WithData("buildingType", string(t))
		}
		return nil, ErrUnavailable.WithReason(ReasonRepoWriteFail).WithCause(err)
	}
	s.pub.Publish(ctx, domain.ConfigEvent{Kind: domain.EventCreated, Configuration: c})
	return &c, nil
}

func (s *ConfigService) Delete(ctx context.Context, id int64, operator int) error {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return s.deleteErr(err, id)
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return s.deleteErr(err, id)
	}
	s.pub.Publish(ctx, domain.ConfigEvent{Kind: domain.EventDeleted, Configuration: c})
	return nil
}

func (s *ConfigService) deleteErr(err error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrNotFound.WithReason(ReasonDeleteNotFound).WithData("id", id)
	}
	return ErrUnavailable.WithReason(ReasonRepoWriteFail).WithData("id", id).WithCause(err)
}

// Import 先整体校验，任何一条不合法都不写入；随后按类型 upsert。
func (s *ConfigService) Import(ctx context.Context, records []model.Record, operator int) (*model.ImportResult, error) {
	seen := make(map[domain.BuildingType]int, len(records))
	for i, r := range records {
		t := domain.BuildingType(strings.TrimSpace(r.BuildingType))
		if err := domain.Validate(t, r.BuildingCost, r.ConstructionTime); err != nil {
			e := withReason(err, ReasonImportInvalid)
			return nil, e.WithMsg(fmt.Sprintf("record %d: %s", i+1, e.Msg())).WithData("index", i)
		}
		if prev, dup := seen[t]; dup {
			return nil, ErrInvalid.WithReason(ReasonImportDuplicated).
				WithMsg(fmt.Sprintf("record %d: building type %s duplicates record %d", i+1, t, prev+1)).
				WithData("index", i)
		}
		seen[t] = i
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrUnavailable.WithReason(ReasonRepoReadFail).WithCause(err)
	}
	byType := make(map[domain.BuildingType]domain.Configuration, len(existing))
	for _, c := range existing {
		byType[c.BuildingType] = c
	}

	res := &model.ImportResult{}
	now := s.now()
	for _, r := range records {
		t := domain.BuildingType(strings.TrimSpace(r.BuildingType))
		if c, ok := byType[t]; ok {
			c.BuildingCost = r.BuildingCost
			c.ConstructionTime = r.ConstructionTime
			c.Mtime = now
			if err = s.repo.Update(ctx, c); err != nil {
				return res, ErrUnavailable.WithReason(ReasonRepoWriteFail).WithData("buildingType", string(t)).WithCause(err)
			}
			res.Updated++
			s.pub.Publish(ctx, domain.ConfigEvent{Kind: domain.EventUpdated, Configuration: c})
			continue
		}
		c := domain.Configuration{
			ID:               s.ids.NextID(),
			BuildingType:     t,
			BuildingCost:     r.BuildingCost,
			ConstructionTime: r.ConstructionTime,
			CreatedBy:        operator,
			Ctime:            now,
			Mtime:            now,
		}
		if err = s.repo.Create(ctx, c); err != nil {
			return res, ErrUnavailable.WithReason(ReasonRepoWriteFail).WithData("buildingType", string(t)).WithCause(err)
		}
		res.Created++
		s.pub.Publish(ctx, domain.ConfigEvent{Kind: domain.EventCreated, Configuration: c})
	}
	return res, nil
}

// Export 导出为导入文件的记录格式。
func (s *ConfigService) Export(ctx context.Context) ([]model.Record, error) {
	cs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Record, 0, len(cs))
	for _, c := range cs {
		out = append(out, model.Record{
			BuildingType:     string(c.BuildingType),
			BuildingCost:     c.BuildingCost,
			ConstructionTime: c.ConstructionTime,
		})
	}
	return out, nil
}

func withReason(err error, r Reason) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e.WithReason(r)
	}
	return ErrInvalid.WithReason(r).WithCause(err)
}
