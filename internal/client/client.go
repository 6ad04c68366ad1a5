package client

import (
	accmodel "GameAdmin/internal/account/app/model"
	bmodel "GameAdmin/internal/building/app/model"
	"GameAdmin/internal/building/domain"
	"GameAdmin/internal/shared/transport"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	EnvServerURL     = "GAMEADMIN_URL"
	DefaultServerURL = "http://localhost:8080"
)

var ErrUnauthorized = errors.New("session expired, please log in again")

// APIError 是服务端返回的非 0 业务码。
type APIError struct {
	Code   int
	Msg    string
	Fields map[string]string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("request failed (code %d)", e.Code)
	}
	return e.Msg
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Client 调用管理后台的 REST API。
type Client struct {
	base   string
	http   *http.Client
	tokens *TokenStore
}

func New(base string, tokens *TokenStore) *Client {
	if strings.TrimSpace(base) == "" {
		base = DefaultServerURL
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: 15 * time.Second},
		tokens: tokens,
	}
}

func (c *Client) Login(ctx context.Context, username, password string) (*accmodel.LoginResp, error) {
	var resp accmodel.LoginResp
	req := accmodel.LoginReq{Username: username, Password: password, Hardware: "adminctl"}
	if _, err := c.call(ctx, http.MethodPost, "/api/auth/login", req, false, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	return &resp, nil
}

// Register 返回服务端的提示语。
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	req := accmodel.RegisterReq{Username: username, Email: email, Password: password}
	return c.call(ctx, http.MethodPost, "/api/auth/register", req, false, nil)
}

// Logout 无论服务端结果如何都清掉本地 token。
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodPost, "/api/auth/logout", nil, true, nil)
	if errors.Is(err, ErrUnauthorized) {
		err = nil
	}
	if cerr := c.tokens.Clear(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (c *Client) List(ctx context.Context) ([]domain.Configuration, error) {
	var out []domain.Configuration
	_, err := c.call(ctx, http.MethodGet, "/api/configurations", nil, true, &out)
	return out, err
}

func (c *Client) Types(ctx context.Context) (*bmodel.TypesResp, error) {
	var out bmodel.TypesResp
	if _, err := c.call(ctx, http.MethodGet, "/api/configurations/types", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Add(ctx context.Context, req bmodel.AddReq) (*domain.Configuration, string, error) {
	var out domain.Configuration
	msg, err := c.call(ctx, http.MethodPost, "/api/configurations", req, true, &out)
	if err != nil {
		return nil, "", err
	}
	return &out, msg, nil
}

func (c *Client) Delete(ctx context.Context, id int64) (string, error) {
	return c.call(ctx, http.MethodDelete, "/api/configurations/"+strconv.FormatInt(id, 10), nil, true, nil)
}

func (c *Client) Import(ctx context.Context, records []bmodel.Record) (*bmodel.ImportResult, error) {
	var out bmodel.ImportResult
	if _, err := c.call(ctx, http.MethodPost, "/api/configurations/import", records, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Export 返回 YAML 原文。
func (c *Client) Export(ctx context.Context) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/configurations/export", nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		_, err = decode(raw, nil)
		if err == nil {
			err = fmt.Errorf("unexpected export response")
		}
		return nil, err
	}
	return raw, nil
}

// call 发送 JSON 请求并解开响应信封，返回服务端 msg。
func (c *Client) call(ctx context.Context, method, path string, body any, auth bool, out any) (string, error) {
	resp, err := c.do(ctx, method, path, body, auth)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return decode(raw, out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, auth bool) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		token, err := c.tokens.Load()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		// 与页面路由守卫一致：失效的 token 直接丢弃
		_ = c.tokens.Clear()
		return nil, ErrUnauthorized
	}
	return resp, nil
}

func decode(raw []byte, out any) (string, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if env.Code != transport.OK {
		apiErr := &APIError{Code: env.Code, Msg: env.Msg}
		if len(env.Data) > 0 && string(env.Data) != "null" {
			_ = json.Unmarshal(env.Data, &apiErr.Fields)
		}
		return "", apiErr
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decode data: %w", err)
		}
	}
	return env.Msg, nil
}
