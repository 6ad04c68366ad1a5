package handler

import (
	"GameAdmin/internal/building/app"
	"GameAdmin/internal/building/infra/persistence/memory"
	"GameAdmin/internal/shared/transport"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubAuth struct{}

func (stubAuth) Authenticate(_ context.Context, token string) (*transport.Identity, error) {
	if token != "good" {
		return nil, errors.New("invalid")
	}
	return &transport.Identity{UId: 3, Username: "admin", Token: token}, nil
}

type seqIDs struct{ n int64 }

func (s *seqIDs) NextID() int64 {
	s.n++
	return s.n
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := app.NewConfigService(memory.NewConfigRepo(), &seqIDs{n: 1000}, nil)
	e := gin.New()
	NewConfiguration(svc, stubAuth{}, nil, nil).RegisterRoutes(e.Group(""))
	return e
}

func do(e *gin.Engine, method, path, contentType, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestConfiguration_未登录返回401(t *testing.T) {
	e := newEngine()
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/configurations", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got=%d", w.Code)
	}
}

func TestConfiguration_增删查(t *testing.T) {
	e := newEngine()

	_, env := do(e, http.MethodPost, "/api/configurations", "application/json",
		`{"buildingType":"Farm","buildingCost":120,"constructionTime":60}`)
	if env.Code != transport.OK || env.Msg != MsgAdded {
		t.Fatalf("add: %+v", env)
	}
	var created struct {
		ID        string `json:"id"`
		CreatedBy int    `json:"createdBy"`
	}
	_ = json.Unmarshal(env.Data, &created)
	if created.ID != "1001" || created.CreatedBy != 3 {
		t.Fatalf("created: %+v", created)
	}

	_, env = do(e, http.MethodPost, "/api/configurations", "application/json",
		`{"buildingType":"Farm","buildingCost":1,"constructionTime":60}`)
	if env.Code != transport.ConfigTypeExist || env.Msg != "Building type is already configured." {
		t.Fatalf("dup: %+v", env)
	}

	_, env = do(e, http.MethodPost, "/api/configurations", "application/json",
		`{"buildingType":"Farm","buildingCost":1,"constructionTime":10}`)
	if env.Code != transport.ConfigInvalid || env.Msg != "Construction time must be between 30 and 1800 seconds." {
		t.Fatalf("invalid: %+v", env)
	}

	_, env = do(e, http.MethodGet, "/api/configurations/types", "", "")
	var types struct {
		All       []string `json:"all"`
		Available []string `json:"available"`
	}
	_ = json.Unmarshal(env.Data, &types)
	if len(types.All) != 5 || len(types.Available) != 4 || types.Available[0] != "Academy" {
		t.Fatalf("types: %+v", types)
	}

	_, env = do(e, http.MethodDelete, "/api/configurations/999", "", "")
	if env.Code != transport.ConfigNotFound || env.Msg != "Configuration not found." {
		t.Fatalf("delete missing: %+v", env)
	}
	_, env = do(e, http.MethodDelete, "/api/configurations/abc", "", "")
	if env.Code != transport.InvalidParam {
		t.Fatalf("delete bad id: %+v", env)
	}
	_, env = do(e, http.MethodDelete, "/api/configurations/1001", "", "")
	if env.Code != transport.OK || env.Msg != MsgDeleted {
		t.Fatalf("delete: %+v", env)
	}

	_, env = do(e, http.MethodGet, "/api/configurations", "", "")
	var list []json.RawMessage
	_ = json.Unmarshal(env.Data, &list)
	if env.Code != transport.OK || len(list) != 0 {
		t.Fatalf("list: %+v", env)
	}
}

func TestConfiguration_导入导出(t *testing.T) {
	e := newEngine()

	yml := "- buildingType: Academy\n  buildingCost: 50\n  constructionTime: 300\n"
	_, env := do(e, http.MethodPost, "/api/configurations/import", "application/x-yaml", yml)
	if env.Code != transport.OK {
		t.Fatalf("yaml import: %+v", env)
	}

	_, env = do(e, http.MethodPost, "/api/configurations/import", "application/json",
		`[{"buildingType":"Academy","buildingCost":60,"constructionTime":300},{"buildingType":"Farm","buildingCost":1,"constructionTime":30}]`)
	var res struct {
		Created int `json:"created"`
		Updated int `json:"updated"`
	}
	_ = json.Unmarshal(env.Data, &res)
	if env.Code != transport.OK || res.Created != 1 || res.Updated != 1 {
		t.Fatalf("json import: %+v res=%+v", env, res)
	}

	w, _ := do(e, http.MethodGet, "/api/configurations/export", "", "")
	body := w.Body.String()
	if w.Code != http.StatusOK || !strings.Contains(body, "buildingType: Farm") || !strings.Contains(body, "buildingCost: 60") {
		t.Fatalf("export: code=%d body=%s", w.Code, body)
	}
	if !bytes.HasPrefix([]byte(w.Header().Get("Content-Type")), []byte("application/x-yaml")) {
		t.Fatalf("content-type: %q", w.Header().Get("Content-Type"))
	}
}
