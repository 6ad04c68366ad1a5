package handler

import (
	"GameAdmin/internal/building/domain"
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// bannerMillis 横幅自动隐藏的时间。
const bannerMillis = 5000

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type page struct {
	Title        string
	Flash        *Flash
	BannerMillis int
	Form         map[string]string
	Errors       map[string]string

	Username  string
	Configs   []domain.Configuration
	Available []domain.BuildingType
}

func (p *Panel) render(c *gin.Context, status int, name string, data page) {
	data.BannerMillis = bannerMillis
	if data.Form == nil {
		data.Form = map[string]string{}
	}
	if data.Errors == nil {
		data.Errors = map[string]string{}
	}
	c.Render(status, render.HTML{Template: pages, Name: name, Data: data})
}
