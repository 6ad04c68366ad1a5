package handler

import (
	"GameAdmin/internal/building/app"
	"GameAdmin/internal/building/app/model"
	"GameAdmin/internal/shared/transport"
	"GameAdmin/internal/shared/transport/ws"
	"GameAdmin/modules/kit/logx"
	"context"
	"strconv"
)

// WsRoutes 让已连接的面板通过同一条 websocket 读写配置。
type WsRoutes struct {
	svc *app.ConfigService
	log logx.Logger
}

type wsDeleteReq struct {
	ID string `json:"id"`
}

func NewWsRoutes(svc *app.ConfigService, log logx.Logger) *WsRoutes {
	if log == nil {
		log = logx.Nop()
	}
	return &WsRoutes{svc: svc, log: log}
}

func (h *WsRoutes) RegisterRoutes(r *ws.Router) {
	g := r.Group("configuration")
	g.Handle("list", h.list)
	g.Handle("types", h.types)
	g.Handle("add", h.add)
	g.Handle("delete", h.delete)
}

func (h *WsRoutes) list(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	cs, err := h.svc.List(ctx)
	if err != nil {
		h.fail(ctx, "ws configuration list", err, resp)
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = cs
}

func (h *WsRoutes) types(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	r, err := h.svc.Types(ctx)
	if err != nil {
		h.fail(ctx, "ws configuration types", err, resp)
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = r
}

func (h *WsRoutes) add(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	var in model.AddReq
	if err := ws.BindJSON(req, &in); err != nil {
		h.fail(ctx, "ws configuration add", app.ErrInvalidParam.WithCause(err), resp)
		return
	}
	cfg, err := h.svc.Add(ctx, in, operatorOf(ctx))
	if err != nil {
		h.fail(ctx, "ws configuration add", err, resp)
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = cfg
}

func (h *WsRoutes) delete(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	var in wsDeleteReq
	if err := ws.BindJSON(req, &in); err != nil {
		h.fail(ctx, "ws configuration delete", app.ErrInvalidParam.WithCause(err), resp)
		return
	}
	id, err := strconv.ParseInt(in.ID, 10, 64)
	if err != nil {
		h.fail(ctx, "ws configuration delete", app.ErrInvalidParam.WithData("id", in.ID), resp)
		return
	}
	if err = h.svc.Delete(ctx, id, operatorOf(ctx)); err != nil {
		h.fail(ctx, "ws configuration delete", err, resp)
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = MsgDeleted
}

func (h *WsRoutes) fail(ctx context.Context, action string, err error, resp *ws.WsMsgResp) {
	transport.SetErrorReason(ctx, app.GetErrorReasonCode(err))
	logx.ReportError(ctx, h.log, action, err)
	resp.Body.Code, resp.Body.Msg = toBizCode(err)
}

// operatorOf 取连接建立时鉴权得到的 uid。
func operatorOf(ctx context.Context) int {
	if id, ok := transport.IdentityFrom(ctx); ok {
		return id.UId
	}
	return 0
}
