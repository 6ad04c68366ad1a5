package interfaces

import (
	"GameAdmin/internal/panel/interfaces/handler"
	"GameAdmin/internal/shared/transport/http/middleware"
	"GameAdmin/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

type Module struct {
	panel *handler.Panel
}

func New(accounts handler.Accounts, configs handler.Configs, auth middleware.Authenticator, opts handler.Options, log logx.Logger) *Module {
	return &Module{panel: handler.NewPanel(accounts, configs, auth, opts, log)}
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.panel.RegisterRoutes(g)
}
