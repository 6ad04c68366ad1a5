package handler

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie  = "flash"
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash 是跨一次重定向的提示横幅。
type Flash struct {
	Kind string `json:"kind"`
	Msg  string `json:"msg"`
}

func setFlash(c *gin.Context, kind, msg string, secure bool) {
	raw, err := json.Marshal(Flash{Kind: kind, Msg: msg})
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(raw), 60, "/", "", secure, true)
}

// popFlash 读取后立即清除，只显示一次。
func popFlash(c *gin.Context, secure bool) *Flash {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", secure, true)
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Msg == "" {
		return nil
	}
	if f.Kind != FlashSuccess {
		f.Kind = FlashError
	}
	return &f
}
