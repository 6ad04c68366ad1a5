package ws

import (
	"GameAdmin/internal/shared/transport"
	"GameAdmin/modules/kit/logx"
	"context"
	"net/http"
	"slices"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Authenticator 校验 token 并返回调用方身份，与 http 中间件使用同一实现。
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*transport.Identity, error)
}

// Hub 负责升级连接并向所有在线连接广播事件。
// auth 非 nil 时，每次请求与推送前都会复核连接的 token，登出或被新登录取代的连接会被断开。
type Hub struct {
	upgrader websocket.Upgrader
	router   *Router
	auth     Authenticator
	log      logx.Logger

	mu    sync.RWMutex
	conns map[*Conn]struct{}
}

// NewHub origins 为空或包含 "*" 时不校验 Origin。
func NewHub(r *Router, auth Authenticator, l logx.Logger, origins ...string) *Hub {
	if l == nil {
		l = logx.Nop()
	}
	h := &Hub{router: r, auth: auth, log: l, conns: make(map[*Conn]struct{})}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(req *http.Request) bool {
			origin := req.Header.Get("Origin")
			if origin == "" || len(origins) == 0 || slices.Contains(origins, "*") {
				return true
			}
			return slices.Contains(origins, origin) || origin == "http://"+req.Host || origin == "https://"+req.Host
		},
	}
	return h
}

// ServeHTTP 假定鉴权已由上游中间件完成，身份从 request context 中取。
func (h *Hub) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	wsConn, err := h.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		h.log.Warn("websocket upgrade error", zap.Error(err))
		return
	}

	ctx := context.WithoutCancel(req.Context())
	c := NewConn(ctx, wsConn, h.router, h.log)
	token := ""
	if id, ok := transport.IdentityFrom(ctx); ok {
		c.SetProperty(ConnKeyUID, id.UId)
		token = id.Token
	}
	if h.auth != nil {
		c.authorize = func() bool { return h.verify(c, token) }
	}

	h.add(c)
	defer h.remove(c)
	h.log.Info("websocket connected", zap.String("addr", c.Addr()), zap.Any(ConnKeyUID, c.GetProperty(ConnKeyUID)))
	c.Run()
}

// Broadcast 返回成功入队的连接数。
func (h *Hub) Broadcast(name string, data any) int {
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	n := 0
	for _, c := range conns {
		if !c.authorized() {
			c.Push(SessionExpiredMsg, nil)
			c.closeAfterFlush()
			continue
		}
		if c.Push(name, data) {
			n++
		}
	}
	return n
}

func (h *Hub) verify(c *Conn, token string) bool {
	if token == "" {
		return false
	}
	if _, err := h.auth.Authenticate(c.Context(), token); err != nil {
		h.log.Info("websocket session revoked", zap.String("addr", c.Addr()),
			zap.Any(ConnKeyUID, c.GetProperty(ConnKeyUID)), zap.Error(err))
		return false
	}
	return true
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close 断开全部连接，用于优雅退出。
func (h *Hub) Close() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[*Conn]struct{})
	h.mu.Unlock()
	for c := range conns {
		c.Close()
	}
}

func (h *Hub) add(c *Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	c.Close()
}
