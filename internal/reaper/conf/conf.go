package conf

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/sjzar/reaper/internal/errors"
	"github.com/sjzar/reaper/pkg/config"
)

const (
	AppName      = "reaper"
	EnvPrefix    = "REAPER"
	EnvConfigDir = "REAPER_DIR"
)

// FlagKeys 命令行参数名到配置键的映射
var FlagKeys = map[string]string{
	"target":  "target",
	"mode":    "mode",
	"exclude": "exclude",
}

// LoadConfig 加载配置，优先级：命令行 > 环境变量 > 配置文件 > 默认值
// configPath 可以是配置目录，也可以直接指向一个 JSON 配置文件
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {

	if configPath == "" {
		configPath = os.Getenv(EnvConfigDir)
	}

	var file string
	if fi, err := os.Stat(configPath); err == nil && !fi.IsDir() {
		file = configPath
		configPath = filepath.Dir(configPath)
	}

	cm, err := config.New(AppName, configPath, "", EnvPrefix)
	if err != nil {
		log.Error().Err(err).Msg("load config failed")
		return nil, errors.Config("init config failed", err)
	}
	cm.SetDefaults(Defaults)

	if flags != nil {
		if err := cm.BindFlags(flags, FlagKeys); err != nil {
			return nil, errors.Config("bind flags failed", err)
		}
	}

	conf := &Config{}
	if file != "" {
		err = cm.LoadFile(file, conf)
	} else {
		err = cm.Load(conf)
	}
	if err != nil {
		log.Error().Err(err).Msg("load config failed")
		return nil, errors.Config("load config failed", err)
	}
	conf.ConfigDir = cm.Path

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	log.Debug().Interface("settings", cm.GetConfig()).Msg("config loaded")

	return conf, nil
}
