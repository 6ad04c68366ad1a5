package middleware

import (
	"GameAdmin/internal/shared/transport"
	"GameAdmin/internal/shared/transport/http/dto"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenCookie 是面板在浏览器里保存 bearer token 的 cookie 名。
const TokenCookie = "token"

const identityCtxKey = "identity"

// Authenticator 校验 token 并返回调用方身份。
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*transport.Identity, error)
}

// TokenFromRequest 依次读取 Authorization: Bearer 与 token cookie。
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if ck, err := r.Cookie(TokenCookie); err == nil {
		return ck.Value
	}
	return ""
}

// BearerAuth 保护 API：token 缺失或失效时返回 401。
func BearerAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authenticate(c, auth)
		if !ok {
			transport.SetErrorReason(c.Request.Context(), "TOKEN_INVALID")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(transport.TokenInvalid, "unauthorized"))
			return
		}
		setIdentity(c, id)
		c.Next()
	}
}

// RedirectAuth 保护面板页面：未登录时清掉 cookie 并跳转 loginPath。
func RedirectAuth(auth Authenticator, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authenticate(c, auth)
		if !ok {
			c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		setIdentity(c, id)
		c.Next()
	}
}

// IdentityFrom 取出中间件写入的身份。
func IdentityFrom(c *gin.Context) (*transport.Identity, bool) {
	v, ok := c.Get(identityCtxKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*transport.Identity)
	return id, ok && id != nil
}

func authenticate(c *gin.Context, auth Authenticator) (*transport.Identity, bool) {
	token := TokenFromRequest(c.Request)
	if token == "" || auth == nil {
		return nil, false
	}
	id, err := auth.Authenticate(c.Request.Context(), token)
	if err != nil || id == nil {
		return nil, false
	}
	return id, true
}

func setIdentity(c *gin.Context, id *transport.Identity) {
	c.Set(identityCtxKey, id)
	c.Request = c.Request.WithContext(transport.WithIdentity(c.Request.Context(), id))
}
