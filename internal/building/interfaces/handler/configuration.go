package handler

import (
	"GameAdmin/internal/building/app"
	"GameAdmin/internal/building/app/model"
	"GameAdmin/internal/building/infra/seed"
	"GameAdmin/internal/shared/transport"
	"GameAdmin/internal/shared/transport/http/dto"
	"GameAdmin/internal/shared/transport/http/middleware"
	"GameAdmin/modules/kit/logx"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgAdded   = "Configuration added successfully."
	MsgDeleted = "Configuration deleted successfully."
)

type Configuration struct {
	svc  *app.ConfigService
	auth middleware.Authenticator
	feed http.Handler
	log  logx.Logger
}

// NewConfiguration feed 为 nil 时不注册 websocket 入口。
func NewConfiguration(svc *app.ConfigService, auth middleware.Authenticator, feed http.Handler, log logx.Logger) *Configuration {
	if log == nil {
		log = logx.Nop()
	}
	return &Configuration{svc: svc, auth: auth, feed: feed, log: log.With(zap.String("module", "building"))}
}

func (h *Configuration) RegisterRoutes(g *gin.RouterGroup) {
	api := g.Group("/api/configurations", middleware.BearerAuth(h.auth))
	api.GET("", h.list)
	api.GET("/types", h.types)
	api.GET("/export", h.export)
	api.POST("", h.add)
	api.POST("/import", h.importRecords)
	api.DELETE("/:id", h.delete)

	if h.feed != nil {
		g.GET("/ws/configurations", middleware.BearerAuth(h.auth), gin.WrapH(h.feed))
	}
}

func (h *Configuration) list(c *gin.Context) {
	cs, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "configuration list", err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(transport.OK, cs))
}

func (h *Configuration) types(c *gin.Context) {
	resp, err := h.svc.Types(c.Request.Context())
	if err != nil {
		h.fail(c, "configuration types", err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(transport.OK, resp))
}

func (h *Configuration) export(c *gin.Context) {
	records, err := h.svc.Export(c.Request.Context())
	if err != nil {
		h.fail(c, "configuration export", err)
		return
	}
	raw, err := seed.Marshal(records)
	if err != nil {
		h.fail(c, "configuration export", app.ErrInternalServer.WithCause(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="buildings.yml"`)
	c.Data(http.StatusOK, "application/x-yaml; charset=utf-8", raw)
}

func (h *Configuration) add(c *gin.Context) {
	var req model.AddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, dto.Error(transport.InvalidParam, "invalid request body"))
		return
	}
	id, _ := middleware.IdentityFrom(c)
	cfg, err := h.svc.Add(c.Request.Context(), req, id.UId)
	if err != nil {
		h.fail(c, "configuration add", err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{Code: transport.OK, Msg: MsgAdded, Data: cfg})
}

// importRecords 请求体可以是 JSON 数组，也可以是 YAML 文件内容。
func (h *Configuration) importRecords(c *gin.Context) {
	var (
		records []model.Record
		err     error
	)
	if strings.Contains(c.ContentType(), "yaml") {
		records, err = seed.Decode(c.Request.Body)
	} else {
		err = c.ShouldBindJSON(&records)
	}
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(transport.InvalidParam, "invalid request body"))
		return
	}
	id, _ := middleware.IdentityFrom(c)
	res, err := h.svc.Import(c.Request.Context(), records, id.UId)
	if err != nil {
		h.fail(c, "configuration import", err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(transport.OK, res))
}

func (h *Configuration) delete(c *gin.Context) {
	cfgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, dto.Error(transport.InvalidParam, "invalid id"))
		return
	}
	id, _ := middleware.IdentityFrom(c)
	if err = h.svc.Delete(c.Request.Context(), cfgID, id.UId); err != nil {
		h.fail(c, "configuration delete", err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{Code: transport.OK, Msg: MsgDeleted})
}

func (h *Configuration) fail(c *gin.Context, action string, err error) {
	ctx := c.Request.Context()
	transport.SetErrorReason(ctx, app.GetErrorReasonCode(err))
	logx.ReportError(ctx, h.log, action, err)
	code, msg := toBizCode(err)
	c.JSON(http.StatusOK, dto.Error(code, msg))
}
