package serverconfig

import (
	"GameAdmin/internal/shared/config"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const defaultConfigRelPath = "configs/conf.yml"

const defaultTokenTTL = 7 * 24 * time.Hour

var Conf Config

var ErrJWTSecretMissing = errors.New("JWT_SECRET is not set: export JWT_SECRET or set security.jwt_secret")

// Load 读取 configs/conf.yml；cfgName 为空时向上查找。
// onLogLevel 在配置文件变更时收到最新的 log.level。
func Load(cfgName string, onLogLevel func(level string)) {
	var hooks []func(v *viper.Viper)
	if onLogLevel != nil {
		hooks = append(hooks, func(v *viper.Viper) {
			onLogLevel(v.GetString("log.level"))
		})
	}
	path := config.Load(cfgName, defaultConfigRelPath, &Conf, hooks...)
	applyDefaults(&Conf)
	// seed.file 的相对路径以配置文件所在目录为基准，与启动目录无关
	if f := Conf.Seed.File; f != "" && !filepath.IsAbs(f) {
		Conf.Seed.File = filepath.Join(filepath.Dir(path), f)
	}

	// 环境变量优先；若未设置则回填配置中的 jwt_secret，兼容本地开发场景。
	if os.Getenv("JWT_SECRET") == "" && Conf.Security.JWTSecret != "" {
		_ = os.Setenv("JWT_SECRET", Conf.Security.JWTSecret)
	}
}

// Validate 检查启动必需项，在 Load 之后调用。
func Validate() error {
	if os.Getenv("JWT_SECRET") == "" {
		return ErrJWTSecretMissing
	}
	return nil
}

func applyDefaults(c *Config) {
	if c.HTTPServer.Host == "" {
		c.HTTPServer.Host = "0.0.0.0"
	}
	if c.HTTPServer.Port == 0 {
		c.HTTPServer.Port = 8080
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverMySQL
	}
	if c.Security.TokenTTL <= 0 {
		c.Security.TokenTTL = defaultTokenTTL
	}
	if c.RateLimit.RPS <= 0 {
		c.RateLimit.RPS = 1
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 5
	}
	if c.Snowflake.NodeID == 0 {
		c.Snowflake.NodeID = 1
	}
}
