package handler

import (
	"GameAdmin/internal/account/app"
	"GameAdmin/internal/account/app/model"
	"GameAdmin/internal/shared/transport"
	"GameAdmin/internal/shared/transport/http/dto"
	"GameAdmin/internal/shared/transport/http/middleware"
	"GameAdmin/modules/kit/logx"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Account struct {
	userService *app.UserService
	log         logx.Logger
	limiter     *middleware.IPLimiter
}

func NewAccount(userService *app.UserService, log logx.Logger, limiter *middleware.IPLimiter) *Account {
	if log == nil {
		log = logx.Nop()
	}
	return &Account{userService: userService, log: log.With(zap.String("module", "account")), limiter: limiter}
}

func (a *Account) RegisterRoutes(g *gin.RouterGroup) {
	auth := g.Group("/api/auth")
	var limited []gin.HandlerFunc
	if a.limiter != nil {
		limited = append(limited, middleware.RateLimit(a.limiter, nil))
	}
	auth.POST("/register", append(limited, a.register)...)
	auth.POST("/login", append(limited, a.login)...)
	auth.POST("/logout", middleware.BearerAuth(a), a.logout)
}

// Authenticate 实现 middleware.Authenticator，供所有受保护路由复用。
func (a *Account) Authenticate(ctx context.Context, token string) (*transport.Identity, error) {
	p, err := a.userService.Authenticate(ctx, token)
	if err != nil {
		transport.SetErrorReason(ctx, app.GetErrorReasonCode(err))
		if !errors.Is(err, app.ErrTokenInvalid) {
			logx.ReportError(ctx, a.log, "account authenticate", err)
		}
		return nil, err
	}
	return &transport.Identity{UId: p.UId, Username: p.Username, Token: p.Token}, nil
}

func (a *Account) register(c *gin.Context) {
	var req model.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, dto.Error(transport.InvalidParam, "invalid request body"))
		return
	}
	resp, err := a.userService.Register(c.Request.Context(), req)
	if err != nil {
		a.fail(c, "account register", err, app.FieldErrors(err))
		return
	}
	c.JSON(http.StatusOK, dto.Response{Code: transport.OK, Msg: "Registration successful!", Data: resp})
}

func (a *Account) login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, dto.Error(transport.InvalidParam, "invalid request body"))
		return
	}
	req.Ip = c.ClientIP()
	if req.Hardware == "" {
		req.Hardware = c.Request.UserAgent()
	}
	resp, err := a.userService.Login(c.Request.Context(), req)
	if err != nil {
		a.fail(c, "account login", err, nil)
		return
	}
	c.JSON(http.StatusOK, dto.Success(transport.OK, resp))
}

func (a *Account) logout(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	if err := a.userService.Logout(c.Request.Context(), id.UId, id.Token); err != nil {
		a.fail(c, "account logout", err, nil)
		return
	}
	c.JSON(http.StatusOK, dto.Success(transport.OK, nil))
}

// fail 在接口层打印一次错误日志并写响应。
func (a *Account) fail(c *gin.Context, action string, err error, data any) {
	ctx := c.Request.Context()
	transport.SetErrorReason(ctx, app.GetErrorReasonCode(err))
	logx.ReportError(ctx, a.log, action, err)
	code, msg := toBizCode(err)
	c.JSON(http.StatusOK, dto.Response{Code: code, Msg: msg, Data: data})
}
