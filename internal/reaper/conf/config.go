package conf

import (
	"github.com/sjzar/reaper/internal/errors"
	"github.com/sjzar/reaper/internal/reaper"
)

const (
	DefaultTarget = "python"
)

type Config struct {
	ConfigDir      string   `mapstructure:"-" json:"-"`
	Target         string   `mapstructure:"target" json:"target"`
	Mode           string   `mapstructure:"mode" json:"mode"`
	Exclude        []string `mapstructure:"exclude" json:"exclude"`
	SelfSignatures []string `mapstructure:"self_signatures" json:"self_signatures"`
}

var Defaults = map[string]any{
	"target":          DefaultTarget,
	"mode":            reaper.ModeSubstring,
	"exclude":         []string{},
	"self_signatures": reaper.DefaultSelfSignatures,
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	if c.Target == "" {
		return errors.RequiredParam("target")
	}
	switch c.Mode {
	case reaper.ModeSubstring, reaper.ModeName:
	default:
		return errors.ConfigInvalid("mode", nil)
	}
	return nil
}

// Matcher 根据配置构造过滤器，selfPIDs 为不允许终止的进程
func (c *Config) Matcher(selfPIDs []int32) *reaper.Matcher {
	m := reaper.NewMatcher(c.Mode, c.Exclude, selfPIDs)
	if c.SelfSignatures != nil {
		m.SelfSignatures = c.SelfSignatures
	}
	return m
}
