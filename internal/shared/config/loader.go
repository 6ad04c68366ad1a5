package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀：GAMEADMIN_MYSQL_HOST 覆盖 mysql.host。
const EnvPrefix = "GAMEADMIN"

func load(configPath string, out any, onChange []func(v *viper.Viper)) error {
	if !fileExist(configPath) {
		return fmt.Errorf("config file not exist, configPath=%v", configPath)
	}

	// .env 只补充未设置的环境变量，不存在时忽略
	envFile := filepath.Join(filepath.Dir(filepath.Dir(configPath)), ".env")
	if fileExist(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	if err := v.Unmarshal(out, decodeHook()); err != nil {
		return fmt.Errorf("viper unmarshal config: %w", err)
	}

	if len(onChange) > 0 {
		v.OnConfigChange(func(e fsnotify.Event) {
			log.Println("config file changed:", e.Name)
			for _, fn := range onChange {
				if fn != nil {
					fn(v)
				}
			}
		})
		v.WatchConfig()
	}
	return nil
}

func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
