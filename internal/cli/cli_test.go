package cli

import (
	accapp "GameAdmin/internal/account/app"
	accmemory "GameAdmin/internal/account/infra/memory"
	accif "GameAdmin/internal/account/interfaces"
	bapp "GameAdmin/internal/building/app"
	"GameAdmin/internal/building/domain"
	bmemory "GameAdmin/internal/building/infra/persistence/memory"
	bif "GameAdmin/internal/building/interfaces"
	"GameAdmin/internal/shared/security"
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type seqIDs struct{ n int64 }

func (s *seqIDs) NextID() int64 {
	s.n++
	return s.n
}

type env struct {
	server string
	token  string
	dir    string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	t.Setenv("JWT_SECRET", "cli-secret")
	gin.SetMode(gin.TestMode)

	store := accmemory.NewStore()
	hash := func(pwd string) (string, error) { return "h:" + pwd, nil }
	check := func(h, pwd string) bool { return h == "h:"+pwd }
	users := accapp.NewUserService(store, store, store.LastLogins(), security.NewIssuer(time.Hour), hash, check)
	account := accif.New(users, nil, nil)
	building := bif.New(bapp.NewConfigService(bmemory.NewConfigRepo(), &seqIDs{}, nil), account.Authenticator(), nil, nil)

	e := gin.New()
	account.HttpRegister(e.Group(""))
	building.HttpRegister(e.Group(""))
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	return &env{server: srv.URL, token: filepath.Join(dir, "token"), dir: dir}
}

func (e *env) run(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	full := append([]string{"--server", e.server, "--token-file", e.token}, args...)
	code := Execute(context.Background(), full, &out, &errOut)
	return code, out.String(), errOut.String()
}

func (e *env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	code, out, errOut := e.run(args...)
	if code != 0 {
		t.Fatalf("%v: code=%d stderr=%s", args, code, errOut)
	}
	return out
}

func TestCLI_未登录(t *testing.T) {
	e := newEnv(t)
	code, _, errOut := e.run("configs", "list")
	if code == 0 || !strings.Contains(errOut, "not logged in") {
		t.Fatalf("code=%d stderr=%q", code, errOut)
	}
}

func TestCLI_本地校验不请求服务端(t *testing.T) {
	e := newEnv(t)
	code, _, errOut := e.run("configs", "add", "--type", "Farm", "--cost", "10", "--time", "10")
	if code == 0 || !strings.Contains(errOut, domain.MsgTimeOutOfRange) {
		t.Fatalf("code=%d stderr=%q", code, errOut)
	}
}

func TestCLI_完整流程(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "register", "-u", "alice", "-e", "alice@example.com", "-p", "secret")
	if !strings.Contains(out, "Registration successful!") {
		t.Fatalf("register out=%q", out)
	}
	code, _, errOut := e.run("register", "-u", "bob", "-p", "secret")
	if code == 0 || !strings.Contains(errOut, "Email is required") {
		t.Fatalf("code=%d stderr=%q", code, errOut)
	}

	e.mustRun(t, "login", "-u", "alice", "-p", "secret")
	if _, err := os.Stat(e.token); err != nil {
		t.Fatalf("token file: %v", err)
	}

	out = e.mustRun(t, "configs", "add", "--type", "Farm", "--cost", "100", "--time", "60")
	if !strings.Contains(out, "Configuration added successfully.") {
		t.Fatalf("add out=%q", out)
	}
	out = e.mustRun(t, "configs", "list")
	if !strings.Contains(out, "Farm") || !strings.Contains(out, "Construction Time") {
		t.Fatalf("list out=%q", out)
	}
	out = e.mustRun(t, "configs", "types")
	if !strings.Contains(out, "Barracks") {
		t.Fatalf("types out=%q", out)
	}

	file := filepath.Join(e.dir, "buildings.yml")
	e.mustRun(t, "configs", "export", "-o", file)
	raw, err := os.ReadFile(file)
	if err != nil || !strings.Contains(string(raw), "buildingType: Farm") {
		t.Fatalf("export raw=%q err=%v", raw, err)
	}
	if err := os.WriteFile(file, []byte("- buildingType: Academy\n  buildingCost: 50\n  constructionTime: 45\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out = e.mustRun(t, "configs", "import", "-f", file)
	if !strings.Contains(out, "1 created, 0 updated") {
		t.Fatalf("import out=%q", out)
	}

	out = e.mustRun(t, "configs", "delete", "1")
	if !strings.Contains(out, "Configuration deleted successfully.") {
		t.Fatalf("delete out=%q", out)
	}
	code, _, errOut = e.run("configs", "delete", "1")
	if code == 0 || !strings.Contains(errOut, "Configuration not found.") {
		t.Fatalf("code=%d stderr=%q", code, errOut)
	}

	e.mustRun(t, "logout")
	if _, err := os.Stat(e.token); !os.IsNotExist(err) {
		t.Fatalf("token file should be removed, err=%v", err)
	}
}

func TestCLI_类型前后空白与服务端一致(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "register", "-u", "alice", "-e", "alice@example.com", "-p", "secret")
	e.mustRun(t, "login", "-u", "alice", "-p", "secret")

	out := e.mustRun(t, "configs", "add", "--type", " Barracks ", "--cost", "5", "--time", "30")
	if !strings.Contains(out, "Configuration added successfully.") {
		t.Fatalf("add out=%q", out)
	}
	out = e.mustRun(t, "configs", "list")
	if !strings.Contains(out, "Barracks") {
		t.Fatalf("list out=%q", out)
	}
}
