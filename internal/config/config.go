package config

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"weblog"
)

const (
	KeyLevel   = "level"
	KeyName    = "name"
	KeyAddr    = "addr"
	KeyMetrics = "metrics"
	KeyColor   = "color"

	EnvPrefix  = "WEBLOG"
	EnvConfig  = "WEBLOG_CONFIG"
	EnvLevel   = "WEBLOG_LEVEL"
	EnvName    = "WEBLOG_NAME"
	EnvAddr    = "WEBLOG_ADDR"
	EnvMetrics = "WEBLOG_METRICS"
	EnvColor   = "WEBLOG_COLOR"

	DefaultLevel      = "INFO"
	DefaultName       = "bot"
	DefaultAddr       = ":8080"
	DefaultMetrics    = ":2112"
	DefaultColor      = "auto"
	DefaultConfigName = "weblog"
	ConfigDir         = "."
)

type Config struct {
	Level   string `mapstructure:"level"`
	Name    string `mapstructure:"name"`
	Addr    string `mapstructure:"addr"`
	Metrics string `mapstructure:"metrics"`
	Color   string `mapstructure:"color"`
}

// LogLevel returns the parsed severity threshold.
func (c Config) LogLevel() (weblog.Level, error) {
	return weblog.ParseLevel(c.Level)
}

// ColorMode returns the parsed color mode.
func (c Config) ColorMode() (weblog.ColorMode, error) {
	return weblog.ParseColorMode(c.Color)
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLevel, DefaultLevel)
	v.SetDefault(KeyName, DefaultName)
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyMetrics, DefaultMetrics)
	v.SetDefault(KeyColor, DefaultColor)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path == "" {
		if envPath, ok := os.LookupEnv(EnvConfig); ok {
			path = envPath
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(ConfigDir)
	}
	return v
}

// Load reads the configuration from the optional file at path, the
// WEBLOG_CONFIG location, or a weblog.* file in the working directory, with
// WEBLOG_* environment variables taking precedence. A missing file is fine;
// an unparseable level or color mode is an initialization failure.
func Load(path string) (Config, error) {
	var cfg Config
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !(errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.LogLevel(); err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	if _, err := cfg.ColorMode(); err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	return cfg, nil
}

// Watch reloads the file at path whenever it changes and delivers each valid
// result to fn. Updates that fail to parse are dropped, so a bad edit never
// degrades a running logger.
func Watch(path string, fn func(Config)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	v.OnConfigChange(func(_ fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			return
		}
		if _, err := cfg.LogLevel(); err != nil {
			return
		}
		if _, err := cfg.ColorMode(); err != nil {
			return
		}
		fn(cfg)
	})
	v.WatchConfig()
	return nil
}
