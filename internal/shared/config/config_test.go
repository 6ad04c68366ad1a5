package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConf struct {
	Name string `mapstructure:"name"`
	HTTP struct {
		Port    int           `mapstructure:"port"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"http"`
	Tags []string `mapstructure:"tags"`
}

func writeConf(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "configs", "conf.yml")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_显式路径并解析duration(t *testing.T) {
	dir := t.TempDir()
	p := writeConf(t, dir, "name: admin\nhttp:\n  port: 8080\n  timeout: 15s\ntags: a,b\n")

	var c testConf
	Load(p, "", &c)
	if c.Name != "admin" || c.HTTP.Port != 8080 {
		t.Fatalf("解析结果不符合预期: %+v", c)
	}
	if c.HTTP.Timeout != 15*time.Second {
		t.Fatalf("期望 timeout=15s, got=%v", c.HTTP.Timeout)
	}
	if len(c.Tags) != 2 || c.Tags[1] != "b" {
		t.Fatalf("期望 tags=[a b], got=%v", c.Tags)
	}
}

func TestLoad_环境变量覆盖(t *testing.T) {
	dir := t.TempDir()
	p := writeConf(t, dir, "name: admin\nhttp:\n  port: 8080\n")
	t.Setenv("GAMEADMIN_HTTP_PORT", "9090")

	var c testConf
	Load(p, "", &c)
	if c.HTTP.Port != 9090 {
		t.Fatalf("期望环境变量覆盖 port=9090, got=%d", c.HTTP.Port)
	}
}

func TestFindConfigUpward_向上查找(t *testing.T) {
	dir := t.TempDir()
	want := writeConf(t, dir, "name: x\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := findConfigUpward(nested, filepath.Join("configs", "conf.yml")); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestLoad_文件不存在应panic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("期望 panic")
		}
	}()
	var c testConf
	Load(filepath.Join(t.TempDir(), "missing.yml"), "", &c)
}
