package interfaces

import (
	"GameAdmin/internal/building/app"
	"GameAdmin/internal/building/interfaces/handler"
	"GameAdmin/internal/shared/transport/http/middleware"
	"GameAdmin/internal/shared/transport/ws"
	"GameAdmin/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

type Module struct {
	http *handler.Configuration
	ws   *handler.WsRoutes
}

// New hub 为 nil 时不提供变更推送。
func New(svc *app.ConfigService, auth middleware.Authenticator, hub *ws.Hub, log logx.Logger) *Module {
	m := &Module{ws: handler.NewWsRoutes(svc, log)}
	if hub != nil {
		m.http = handler.NewConfiguration(svc, auth, hub, log)
	} else {
		m.http = handler.NewConfiguration(svc, auth, nil, log)
	}
	return m
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.http.RegisterRoutes(g)
}

// WsRegister 把 configuration.* 请求挂到 websocket 路由上。
func (m *Module) WsRegister(r *ws.Router) {
	m.ws.RegisterRoutes(r)
}
