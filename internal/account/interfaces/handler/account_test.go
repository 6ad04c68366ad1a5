package handler

import (
	"GameAdmin/internal/account/app"
	"GameAdmin/internal/account/infra/memory"
	"GameAdmin/internal/shared/security"
	"GameAdmin/internal/shared/transport"
	"GameAdmin/internal/shared/transport/http/middleware"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newEngine(t *testing.T, limiter *middleware.IPLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "handler-secret")
	store := memory.NewStore()
	svc := app.NewUserService(store, store, store.LastLogins(), security.NewIssuer(time.Hour),
		func(p string) (string, error) { return "h:" + p, nil },
		func(h, p string) bool { return h == "h:"+p })
	e := gin.New()
	NewAccount(svc, nil, limiter).RegisterRoutes(e.Group(""))
	return e
}

func postJSON(t *testing.T, e *gin.Engine, path string, body any, token string) (int, envelope) {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func TestAccount_注册登录登出流程(t *testing.T) {
	e := newEngine(t, nil)

	_, env := postJSON(t, e, "/api/auth/register", map[string]string{"username": "alice", "email": "alice@example.com", "password": "pw"}, "")
	if env.Code != transport.OK || env.Msg != "Registration successful!" {
		t.Fatalf("register: %+v", env)
	}

	_, env = postJSON(t, e, "/api/auth/register", map[string]string{"username": "alice", "email": "a2@example.com", "password": "pw"}, "")
	if env.Code != transport.UserExist {
		t.Fatalf("重复注册: %+v", env)
	}

	_, env = postJSON(t, e, "/api/auth/login", map[string]string{"username": "alice", "password": "bad"}, "")
	if env.Code != transport.PwdIncorrect || env.Msg != "Login failed. Please check your credentials." {
		t.Fatalf("错误密码: %+v", env)
	}

	_, env = postJSON(t, e, "/api/auth/login", map[string]string{"username": "alice", "password": "pw"}, "")
	if env.Code != transport.OK {
		t.Fatalf("login: %+v", env)
	}
	var data struct {
		Token    string `json:"token"`
		UId      int    `json:"uid"`
		Username string `json:"username"`
	}
	_ = json.Unmarshal(env.Data, &data)
	if data.Token == "" || data.Username != "alice" {
		t.Fatalf("login data: %+v", data)
	}

	status, env := postJSON(t, e, "/api/auth/logout", nil, data.Token)
	if status != http.StatusOK || env.Code != transport.OK {
		t.Fatalf("logout: status=%d env=%+v", status, env)
	}
	status, _ = postJSON(t, e, "/api/auth/logout", nil, data.Token)
	if status != http.StatusUnauthorized {
		t.Fatalf("登出后 token 应失效: status=%d", status)
	}
}

func TestAccount_注册字段校验(t *testing.T) {
	e := newEngine(t, nil)
	_, env := postJSON(t, e, "/api/auth/register", map[string]string{"username": "bob", "email": "bad", "password": "pw"}, "")
	if env.Code != transport.InvalidParam || env.Msg != "Email is invalid" {
		t.Fatalf("got %+v", env)
	}
	var fields map[string]string
	_ = json.Unmarshal(env.Data, &fields)
	if fields["email"] != "Email is invalid" {
		t.Fatalf("fields: %v", fields)
	}
}

func TestAccount_登录限流(t *testing.T) {
	e := newEngine(t, middleware.NewIPLimiter(0.001, 1))
	status, _ := postJSON(t, e, "/api/auth/login", map[string]string{"username": "x", "password": "y"}, "")
	if status != http.StatusOK {
		t.Fatalf("first: %d", status)
	}
	status, env := postJSON(t, e, "/api/auth/login", map[string]string{"username": "x", "password": "y"}, "")
	if status != http.StatusTooManyRequests || env.Code != transport.RateLimited {
		t.Fatalf("second: status=%d env=%+v", status, env)
	}
}

func TestToBizCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{app.ErrInvalidParam, transport.InvalidParam},
		{app.ErrUserExist, transport.UserExist},
		{app.ErrInvalidCredentials, transport.PwdIncorrect},
		{app.ErrTokenInvalid, transport.TokenInvalid},
		{app.ErrUnavailable.WithCause(errors.New("db")), transport.Unavailable},
		{errors.New("boom"), transport.SystemError},
	}
	for _, c := range cases {
		if got, _ := toBizCode(c.err); got != c.code {
			t.Fatalf("err=%v: got=%d want=%d", c.err, got, c.code)
		}
	}
}
