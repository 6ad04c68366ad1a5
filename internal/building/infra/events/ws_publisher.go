package events

import (
	"GameAdmin/internal/building/domain"
	"GameAdmin/modules/kit/logx"
	"context"

	"go.uber.org/zap"
)

// Broadcaster 由 ws.Hub 实现。
type Broadcaster interface {
	Broadcast(name string, data any) int
}

// WsPublisher 把配置变更广播给所有在线的面板连接。
type WsPublisher struct {
	b   Broadcaster
	log logx.Logger
}

func NewWsPublisher(b Broadcaster, log logx.Logger) *WsPublisher {
	if log == nil {
		log = logx.Nop()
	}
	return &WsPublisher{b: b, log: log}
}

func (p *WsPublisher) Publish(ctx context.Context, evt domain.ConfigEvent) {
	n := p.b.Broadcast(evt.Name(), evt)
	p.log.WithContext(ctx).Debug("config event published",
		zap.String("event", evt.Name()),
		zap.Int64("id", evt.Configuration.ID),
		zap.Int("receivers", n),
	)
}
