package ws

import (
	"GameAdmin/internal/shared/transport"
	"GameAdmin/modules/kit/logx"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	outQueueSize = 256
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
	maxReadSize  = 64 << 10
)

// Conn 是一条已升级的 websocket 连接：读循环负责心跳与请求分发，写循环串行发送 JSON 文本帧。
type Conn struct {
	conn     *websocket.Conn
	router   *Router
	outChan  chan *RespBody
	property map[string]any
	sync.RWMutex
	ctx       context.Context
	done      chan struct{}
	closeOnce sync.Once
	log       logx.Logger

	// authorize 为 nil 表示不复核身份；一旦失败连接即作废。
	authorize func() bool
	revoked   atomic.Bool
}

func NewConn(ctx context.Context, wsConn *websocket.Conn, router *Router, l logx.Logger) *Conn {
	if l == nil {
		l = logx.Nop()
	}
	return &Conn{
		conn:     wsConn,
		router:   router,
		outChan:  make(chan *RespBody, outQueueSize),
		property: make(map[string]any),
		ctx:      ctx,
		done:     make(chan struct{}),
		log:      l,
	}
}

func (s *Conn) SetProperty(key string, value any) {
	s.Lock()
	defer s.Unlock()
	s.property[key] = value
}

func (s *Conn) GetProperty(key string) any {
	s.RLock()
	defer s.RUnlock()
	return s.property[key]
}

func (s *Conn) Addr() string {
	return s.conn.RemoteAddr().String()
}

func (s *Conn) Context() context.Context {
	return s.ctx
}

// Push 非阻塞入队；队列满说明对端消费过慢，直接断开。
func (s *Conn) Push(name string, data any) bool {
	return s.enqueue(&RespBody{Name: name, Msg: data})
}

func (s *Conn) enqueue(body *RespBody) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.outChan <- body:
		return true
	default:
		s.log.Warn("ws out queue full, closing", zap.String("addr", s.Addr()))
		s.Close()
		return false
	}
}

// Run 启动写循环并在当前 goroutine 执行读循环，连接关闭后返回。
func (s *Conn) Run() {
	go s.writeMsgLoop()
	s.readMsgLoop()
}

func (s *Conn) readMsgLoop() {
	defer func() {
		if err := recover(); err != nil {
			s.log.Error("ws readMsgLoop panic", zap.String("err", fmt.Sprintf("%v", err)))
		}
		s.Close()
	}()

	s.conn.SetReadLimit(maxReadSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("ws read msg", zap.Error(err))
			}
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))

		reqBody := ReqBody{}
		if err := json.Unmarshal(data, &reqBody); err != nil {
			s.log.Warn("ws unmarshal json error", zap.Error(err))
			continue
		}

		// req 和 resp 的 Seq 必须一致
		resp := WsMsgResp{Body: &RespBody{Seq: reqBody.Seq, Name: reqBody.Name}}
		if !s.authorized() {
			resp.Body.Code = transport.TokenInvalid
			resp.Body.Msg = MsgSessionExpired
			s.enqueue(resp.Body)
			s.closeAfterFlush()
			continue
		}
		if reqBody.Name == HeartbeatMsg {
			h := &Heartbeat{}
			_ = mapstructure.Decode(reqBody.Msg, h)
			h.STime = time.Now().UnixMilli()
			resp.Body.Msg = h
		} else if s.router != nil {
			s.router.Dispatch(&WsMsgReq{Body: &reqBody, Conn: s}, &resp)
		} else {
			continue
		}
		s.enqueue(resp.Body)
	}
}

func (s *Conn) writeMsgLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case msg := <-s.outChan:
			if msg == nil {
				_ = s.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.ClosePolicyViolation, MsgSessionExpired),
					time.Now().Add(writeWait))
				s.Close()
				return
			}
			if err := s.write(msg); err != nil {
				s.log.Warn("ws write error", zap.Error(err))
				s.Close()
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Conn) write(msg *RespBody) error {
	data, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("ws marshal json error", zap.Error(err))
		return nil
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// authorized 复核连接建立时的 token，失败后不再重试。
func (s *Conn) authorized() bool {
	if s.revoked.Load() {
		return false
	}
	if s.authorize == nil || s.authorize() {
		return true
	}
	s.revoked.Store(true)
	return false
}

// closeAfterFlush 让写循环发完已入队的消息后发送 close 帧并断开。
func (s *Conn) closeAfterFlush() {
	select {
	case <-s.done:
	case s.outChan <- nil:
	default:
		s.Close()
	}
}

func (s *Conn) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

func (s *Conn) Done() <-chan struct{} {
	return s.done
}
