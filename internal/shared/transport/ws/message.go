package ws

import "context"

type ReqBody struct {
	Seq  int64  `json:"seq"`
	Name string `json:"name"`
	Msg  any    `json:"msg"`
}

// RespBody 既用于请求应答，也用于服务端主动推送（推送时 Seq 为 0）。
type RespBody struct {
	Seq  int64  `json:"seq"`
	Name string `json:"name"`
	Code int    `json:"code"`
	Msg  any    `json:"msg"`
}

type WsMsgReq struct {
	Body *ReqBody
	Conn WSConn
}

type WsMsgResp struct {
	Body *RespBody
}

// WSConn 是 handler 能看到的连接能力。
type WSConn interface {
	SetProperty(key string, value any)
	GetProperty(key string) any
	Addr() string
	Push(name string, data any) bool
	Close()
	// Context 携带升级请求时校验得到的身份。
	Context() context.Context
	// Done 在连接关闭时被关闭。
	Done() <-chan struct{}
}

type Heartbeat struct {
	CTime int64 `json:"ctime" mapstructure:"ctime"`
	STime int64 `json:"stime" mapstructure:"stime"`
}

const (
	HeartbeatMsg = "heartbeat"
	ConnKeyUID   = "uid"
	// SessionExpiredMsg 在 token 失效、连接即将关闭前推送。
	SessionExpiredMsg = "session.expired"
	MsgSessionExpired = "session expired"
)
