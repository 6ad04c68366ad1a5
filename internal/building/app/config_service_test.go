package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"GameAdmin/internal/building/app/model"
	"GameAdmin/internal/building/domain"
	"GameAdmin/internal/building/infra/persistence/memory"
)

type seqIDs struct{ n int64 }

func (s *seqIDs) NextID() int64 {
	s.n++
	return s.n
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ConfigEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt domain.ConfigEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

type brokenRepo struct {
	*memory.ConfigRepo
	err error
}

func (r brokenRepo) List(context.Context) ([]domain.Configuration, error) {
	return nil, domain.ErrSystemUnavailable.WithCause(r.err)
}

func (r brokenRepo) Create(context.Context, domain.Configuration) error {
	return domain.ErrSystemUnavailable.WithCause(r.err)
}

func newService() (*ConfigService, *recordingPublisher) {
	pub := &recordingPublisher{}
	return NewConfigService(memory.NewConfigRepo(), &seqIDs{}, pub), pub
}

func msgOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg()
	}
	return ""
}

func TestAdd_成功并发布created事件(t *testing.T) {
	s, pub := newService()
	ctx := context.Background()

	c, err := s.Add(ctx, model.AddReq{BuildingType: "Farm", BuildingCost: 120, ConstructionTime: 60}, 7)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID != 1 || c.CreatedBy != 7 || c.Ctime.IsZero() {
		t.Fatalf("unexpected record: %+v", c)
	}
	if len(pub.events) != 1 || pub.events[0].Kind != domain.EventCreated || pub.events[0].Configuration.ID != 1 {
		t.Fatalf("events: %+v", pub.events)
	}
}

func TestAdd_校验失败不写入(t *testing.T) {
	s, pub := newService()
	ctx := context.Background()

	_, err := s.Add(ctx, model.AddReq{BuildingType: "Castle", BuildingCost: 0, ConstructionTime: 10}, 1)
	if !errors.Is(err, ErrInvalid) || msgOf(err) != domain.MsgCostNotPositive {
		t.Fatalf("got=%v", err)
	}
	if GetErrorReasonCode(err) != ReasonAddInvalid.Code {
		t.Fatalf("reason: %q", GetErrorReasonCode(err))
	}
	if cs, _ := s.List(ctx); len(cs) != 0 || len(pub.events) != 0 {
		t.Fatalf("校验失败不应写入或发布")
	}
}

func TestAdd_类型重复(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, _ = s.Add(ctx, model.AddReq{BuildingType: "Farm", BuildingCost: 1, ConstructionTime: 30}, 1)

	_, err := s.Add(ctx, model.AddReq{BuildingType: "Farm", BuildingCost: 2, ConstructionTime: 40}, 1)
	if !errors.Is(err, ErrTypeExist) || msgOf(err) != domain.MsgTypeExist {
		t.Fatalf("got=%v", err)
	}
}

func TestTypes_只返回未配置类型(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, _ = s.Add(ctx, model.AddReq{BuildingType: "Headquarters", BuildingCost: 1000, ConstructionTime: 1800}, 1)

	resp, err := s.Types(ctx)
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	if len(resp.All) != 5 || len(resp.Available) != 4 {
		t.Fatalf("got=%+v", resp)
	}
	for _, typ := range resp.Available {
		if typ == domain.Headquarters {
			t.Fatalf("已配置类型不应出现在 available")
		}
	}
}

func TestList_按展示顺序(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	for _, typ := range []string{"Barracks", "Farm", "Academy"} {
		if _, err := s.Add(ctx, model.AddReq{BuildingType: typ, BuildingCost: 10, ConstructionTime: 30}, 1); err != nil {
			t.Fatalf("add %s: %v", typ, err)
		}
	}
	cs, _ := s.List(ctx)
	if cs[0].BuildingType != domain.Farm || cs[1].BuildingType != domain.Academy || cs[2].BuildingType != domain.Barracks {
		t.Fatalf("got=%v", cs)
	}
}

func TestDelete_不存在与成功(t *testing.T) {
	s, pub := newService()
	ctx := context.Background()

	if err := s.Delete(ctx, 42, 1); !errors.Is(err, ErrNotFound) || msgOf(err) != domain.MsgNotFound {
		t.Fatalf("got=%v", err)
	}
	c, _ := s.Add(ctx, model.AddReq{BuildingType: "Farm", BuildingCost: 1, ConstructionTime: 30}, 1)
	if err := s.Delete(ctx, c.ID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	last := pub.events[len(pub.events)-1]
	if last.Kind != domain.EventDeleted || last.Configuration.BuildingType != domain.Farm {
		t.Fatalf("event: %+v", last)
	}
	avail, _ := s.AvailableTypes(ctx)
	if len(avail) != 5 {
		t.Fatalf("删除后类型应重新可用: %v", avail)
	}
}

func TestImport_全部校验后再upsert(t *testing.T) {
	s, pub := newService()
	ctx := context.Background()
	_, _ = s.Add(ctx, model.AddReq{BuildingType: "Farm", BuildingCost: 1, ConstructionTime: 30}, 1)
	pub.events = nil

	_, err := s.Import(ctx, []model.Record{
		{BuildingType: "Academy", BuildingCost: 10, ConstructionTime: 60},
		{BuildingType: "Barracks", BuildingCost: 10, ConstructionTime: 5},
	}, 1)
	if !errors.Is(err, ErrInvalid) || msgOf(err) != "record 2: "+domain.MsgTimeOutOfRange {
		t.Fatalf("got=%v", err)
	}
	if cs, _ := s.List(ctx); len(cs) != 1 || len(pub.events) != 0 {
		t.Fatalf("任何一条不合法都不应写入")
	}

	_, err = s.Import(ctx, []model.Record{
		{BuildingType: "Academy", BuildingCost: 10, ConstructionTime: 60},
		{BuildingType: "Academy", BuildingCost: 20, ConstructionTime: 60},
	}, 1)
	if !errors.Is(err, ErrInvalid) || GetErrorReasonCode(err) != ReasonImportDuplicated.Code {
		t.Fatalf("重复类型: got=%v", err)
	}

	res, err := s.Import(ctx, []model.Record{
		{BuildingType: "Farm", BuildingCost: 500, ConstructionTime: 90},
		{BuildingType: "Academy", BuildingCost: 10, ConstructionTime: 60},
	}, 1)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Created != 1 || res.Updated != 1 {
		t.Fatalf("got=%+v", res)
	}
	if len(pub.events) != 2 || pub.events[0].Kind != domain.EventUpdated || pub.events[1].Kind != domain.EventCreated {
		t.Fatalf("events: %+v", pub.events)
	}

	out, _ := s.Export(ctx)
	if len(out) != 2 || out[0].BuildingType != "Farm" || out[0].BuildingCost != 500 {
		t.Fatalf("export: %+v", out)
	}
}

func TestService_存储不可用(t *testing.T) {
	cause := errors.New("mongo down")
	s := NewConfigService(brokenRepo{ConfigRepo: memory.NewConfigRepo(), err: cause}, &seqIDs{}, nil)
	ctx := context.Background()

	if _, err := s.List(ctx); !errors.Is(err, ErrUnavailable) || !errors.Is(err, cause) {
		t.Fatalf("list: %v", err)
	}
	_, err := s.Add(ctx, model.AddReq{BuildingType: "Farm", BuildingCost: 1, ConstructionTime: 30}, 1)
	if !errors.Is(err, ErrUnavailable) || GetErrorReasonCode(err) != ReasonRepoWriteFail.Code {
		t.Fatalf("add: %v", err)
	}
}
