package interfaces

import (
	"GameAdmin/internal/account/app"
	"GameAdmin/internal/account/interfaces/handler"
	"GameAdmin/internal/shared/transport/http/middleware"
	"GameAdmin/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

type Module struct {
	account *handler.Account
}

func New(userService *app.UserService, log logx.Logger, limiter *middleware.IPLimiter) *Module {
	return &Module{account: handler.NewAccount(userService, log, limiter)}
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.account.RegisterRoutes(g)
}

// Authenticator 给其他模块的受保护路由使用。
func (m *Module) Authenticator() middleware.Authenticator {
	return m.account
}
