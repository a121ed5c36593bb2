package config

import (
	"fmt"
	"strings"

	"github.com/flarebyte/timers/internal/display"
	"github.com/flarebyte/timers/internal/notify"
	"github.com/spf13/viper"
)

const envPrefix = "TIMERS"

type NotifyConfig struct {
	Title string `mapstructure:"title"`
	Body  string `mapstructure:"body"`
	Icon  string `mapstructure:"icon"`
}

type Config struct {
	Font     string       `mapstructure:"font"`
	LogLevel string       `mapstructure:"log_level"`
	Notify   NotifyConfig `mapstructure:"notify"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("font", display.DefaultFont)
	v.SetDefault("log_level", "warn")
	v.SetDefault("notify.title", notify.DefaultTitle)
	v.SetDefault("notify.body", notify.DefaultBody)
	v.SetDefault("notify.icon", notify.DefaultIcon)
}

// Load reads settings from TIMERS_* environment variables. There is no
// config file; unset variables keep their defaults.
//
//	TIMERS_FONT, TIMERS_LOG_LEVEL,
//	TIMERS_NOTIFY_TITLE, TIMERS_NOTIFY_BODY, TIMERS_NOTIFY_ICON
func Load() (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Font = strings.TrimSpace(cfg.Font)
	if cfg.Font == "" {
		cfg.Font = display.DefaultFont
	}
	return cfg, nil
}
