package handler

import (
	accapp "GameAdmin/internal/account/app"
	accmodel "GameAdmin/internal/account/app/model"
	bmodel "GameAdmin/internal/building/app/model"
	"GameAdmin/internal/building/domain"
	"GameAdmin/internal/shared/transport"
	"GameAdmin/internal/shared/transport/http/middleware"
	"GameAdmin/modules/kit/errx"
	"GameAdmin/modules/kit/logx"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathLogin         = "/login"
	PathRegister      = "/register"
	PathLogout        = "/logout"
	PathConfiguration = "/configuration"
)

const (
	MsgLoginRequired   = "Username and password are required"
	MsgLoginFailed     = "Login failed. Please check your credentials."
	MsgRegisterFailed  = "Registration failed. Try a different username and e-mail address."
	MsgRegistered      = "Registration successful!"
	MsgUnavailable     = "Service unavailable. Please try again later."
	MsgTooManyAttempts = "Too many attempts. Please try again later."
	MsgAdded           = "Configuration added successfully."
	MsgDeleted         = "Configuration deleted successfully."
	MsgDeleteFailed    = "Failed to delete configuration."
	MsgLoadFailed      = "Failed to load configurations."
)

// Accounts 是面板用到的账号能力。
type Accounts interface {
	Register(ctx context.Context, req accmodel.RegisterReq) (*accmodel.RegisterResp, error)
	Login(ctx context.Context, req accmodel.LoginReq) (*accmodel.LoginResp, error)
	Logout(ctx context.Context, uid int, token string) error
}

// Configs 是面板用到的建筑配置能力。
type Configs interface {
	List(ctx context.Context) ([]domain.Configuration, error)
	AvailableTypes(ctx context.Context) ([]domain.BuildingType, error)
	Add(ctx context.Context, req bmodel.AddReq, operator int) (*domain.Configuration, error)
	Delete(ctx context.Context, id int64, operator int) error
}

type Options struct {
	CookieSecure bool
	TokenTTL     time.Duration
	Limiter      *middleware.IPLimiter
}

// Panel 是服务端渲染的管理页面：登录、注册、配置列表。
type Panel struct {
	accounts Accounts
	configs  Configs
	auth     middleware.Authenticator
	opts     Options
	log      logx.Logger
}

func NewPanel(accounts Accounts, configs Configs, auth middleware.Authenticator, opts Options, log logx.Logger) *Panel {
	if log == nil {
		log = logx.Nop()
	}
	return &Panel{accounts: accounts, configs: configs, auth: auth, opts: opts, log: log.With(zap.String("module", "panel"))}
}

func (p *Panel) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, PathConfiguration) })

	var loginLimit, registerLimit []gin.HandlerFunc
	if p.opts.Limiter != nil {
		loginLimit = append(loginLimit, middleware.RateLimit(p.opts.Limiter, p.limited("login")))
		registerLimit = append(registerLimit, middleware.RateLimit(p.opts.Limiter, p.limited("register")))
	}
	g.GET(PathLogin, p.loginPage)
	g.POST(PathLogin, append(loginLimit, p.login)...)
	g.GET(PathRegister, p.registerPage)
	g.POST(PathRegister, append(registerLimit, p.register)...)
	g.POST(PathLogout, p.logout)

	guarded := g.Group(PathConfiguration, middleware.RedirectAuth(p.auth, PathLogin))
	guarded.GET("", p.configurationPage)
	guarded.POST("", p.addConfiguration)
	guarded.POST("/:id/delete", p.deleteConfiguration)
}

func (p *Panel) limited(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.render(c, http.StatusTooManyRequests, name, page{
			Title: strings.ToUpper(name[:1]) + name[1:],
			Flash: &Flash{Kind: FlashError, Msg: MsgTooManyAttempts},
		})
	}
}

func (p *Panel) loginPage(c *gin.Context) {
	if p.signedIn(c) {
		c.Redirect(http.StatusSeeOther, PathConfiguration)
		return
	}
	p.render(c, http.StatusOK, "login", page{Title: "Login", Flash: popFlash(c, p.opts.CookieSecure)})
}

func (p *Panel) login(c *gin.Context) {
	req := accmodel.LoginReq{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
		Ip:       c.ClientIP(),
		Hardware: c.Request.UserAgent(),
	}
	form := map[string]string{"username": req.Username}
	if req.Username == "" || req.Password == "" {
		p.render(c, http.StatusOK, "login", page{Title: "Login", Form: form, Flash: &Flash{Kind: FlashError, Msg: MsgLoginRequired}})
		return
	}
	resp, err := p.accounts.Login(c.Request.Context(), req)
	if err != nil {
		p.report(c, "panel login", err)
		msg := MsgLoginFailed
		if !isBiz(err) {
			msg = MsgUnavailable
		}
		p.render(c, http.StatusOK, "login", page{Title: "Login", Form: form, Flash: &Flash{Kind: FlashError, Msg: msg}})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, resp.Token, int(p.opts.TokenTTL/time.Second), "/", "", p.opts.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, PathConfiguration)
}

func (p *Panel) registerPage(c *gin.Context) {
	p.render(c, http.StatusOK, "register", page{Title: "Register", Flash: popFlash(c, p.opts.CookieSecure)})
}

func (p *Panel) register(c *gin.Context) {
	req := accmodel.RegisterReq{
		Username: strings.TrimSpace(c.PostForm("username")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}
	form := map[string]string{"username": req.Username, "email": req.Email}
	if _, err := p.accounts.Register(c.Request.Context(), req); err != nil {
		p.report(c, "panel register", err)
		data := page{Title: "Register", Form: form}
		if fields := accapp.FieldErrors(err); len(fields) > 0 {
			data.Errors = fields
		} else if isBiz(err) {
			data.Flash = &Flash{Kind: FlashError, Msg: MsgRegisterFailed}
		} else {
			data.Flash = &Flash{Kind: FlashError, Msg: MsgUnavailable}
		}
		p.render(c, http.StatusOK, "register", data)
		return
	}
	setFlash(c, FlashSuccess, MsgRegistered, p.opts.CookieSecure)
	c.Redirect(http.StatusSeeOther, PathLogin)
}

func (p *Panel) logout(c *gin.Context) {
	if token := middleware.TokenFromRequest(c.Request); token != "" && p.auth != nil {
		ctx := c.Request.Context()
		if id, err := p.auth.Authenticate(ctx, token); err == nil {
			if err := p.accounts.Logout(ctx, id.UId, id.Token); err != nil {
				p.report(c, "panel logout", err)
			}
		}
	}
	p.clearToken(c)
	c.Redirect(http.StatusSeeOther, PathLogin)
}

func (p *Panel) configurationPage(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	ctx := c.Request.Context()
	data := page{Title: "Configuration", Username: id.Username, Flash: popFlash(c, p.opts.CookieSecure)}

	configs, err := p.configs.List(ctx)
	if err != nil {
		p.report(c, "panel list configurations", err)
		data.Flash = &Flash{Kind: FlashError, Msg: MsgLoadFailed}
		p.render(c, http.StatusOK, "configuration", data)
		return
	}
	data.Configs = configs
	data.Available = domain.AvailableTypes(configs)
	p.render(c, http.StatusOK, "configuration", data)
}

func (p *Panel) addConfiguration(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	req := bmodel.AddReq{
		BuildingType:     strings.TrimSpace(c.PostForm("buildingType")),
		BuildingCost:     formInt64(c.PostForm("buildingCost")),
		ConstructionTime: int(formInt64(c.PostForm("constructionTime"))),
	}
	if _, err := p.configs.Add(c.Request.Context(), req, id.UId); err != nil {
		p.report(c, "panel add configuration", err)
		setFlash(c, FlashError, p.bizMsg(err, MsgUnavailable), p.opts.CookieSecure)
	} else {
		setFlash(c, FlashSuccess, MsgAdded, p.opts.CookieSecure)
	}
	c.Redirect(http.StatusSeeOther, PathConfiguration)
}

func (p *Panel) deleteConfiguration(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	cfgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		err = p.configs.Delete(c.Request.Context(), cfgID, id.UId)
	}
	if err != nil {
		p.report(c, "panel delete configuration", err)
		setFlash(c, FlashError, MsgDeleteFailed, p.opts.CookieSecure)
	} else {
		setFlash(c, FlashSuccess, MsgDeleted, p.opts.CookieSecure)
	}
	c.Redirect(http.StatusSeeOther, PathConfiguration)
}

func (p *Panel) signedIn(c *gin.Context) bool {
	token := middleware.TokenFromRequest(c.Request)
	if token == "" || p.auth == nil {
		return false
	}
	_, err := p.auth.Authenticate(c.Request.Context(), token)
	return err == nil
}

func (p *Panel) clearToken(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", p.opts.CookieSecure, true)
}

// report 在接口层打印一次错误日志。
func (p *Panel) report(c *gin.Context, action string, err error) {
	ctx := c.Request.Context()
	if e, ok := errx.From(err); ok && e.Reason() != "" {
		transport.SetErrorReason(ctx, e.Reason())
	}
	logx.ReportError(ctx, p.log, action, err)
}

func (p *Panel) bizMsg(err error, fallback string) string {
	if e, ok := errx.From(err); ok && e.IsBiz() && e.Msg() != "" {
		return e.Msg()
	}
	return fallback
}

func isBiz(err error) bool {
	e, ok := errx.From(err)
	return ok && e.IsBiz()
}

// formInt64 解析失败按 0 处理，交给领域校验给出提示。
func formInt64(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
