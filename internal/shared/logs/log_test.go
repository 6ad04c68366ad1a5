package logs

import (
	"path/filepath"
	"testing"

	"GameAdmin/internal/shared/serverconfig"

	"go.uber.org/zap/zapcore"
)

func TestInit_写文件并支持热更新级别(t *testing.T) {
	cfg := serverconfig.LogConfig{
		FileDir: filepath.Join(t.TempDir(), "admin.log"),
		Level:   "warn",
	}
	if err := Init("TestInit", cfg); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	if Logger().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("warn 级别下不应输出 info")
	}

	SetLevel("debug")
	if !Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("热更新后期望输出 debug")
	}
	SetLevel("not-a-level")
	if Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("非法级别回退到 info")
	}
	Sync()
}
