package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load 读取配置到 out，失败直接 panic（启动期错误无法恢复）。
//
// 约定：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 defaultRelPath。
//
// onChange 在配置文件变更后回调，回调里应只读取需要热更新的字段。
// 返回实际加载的配置文件路径。
func Load(cfgName, defaultRelPath string, out any, onChange ...func(v *viper.Viper)) string {
	curDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	var path string
	switch {
	case cfgName == "":
		path = findConfigUpward(curDir, defaultRelPath)
	case filepath.IsAbs(cfgName):
		path = cfgName
	default:
		path = filepath.Join(curDir, cfgName)
	}
	if err := load(path, out, onChange); err != nil {
		panic(err)
	}
	return path
}

func findConfigUpward(startDir, rel string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, rel)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("config file not exist, searched " + rel + " from: " + startDir)
		}
		dir = parent
	}
}
