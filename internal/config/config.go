package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/michaelbrown/sqlgate/internal/sandbox"
)

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type SandboxConfig struct {
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
	MaxRows      int           `mapstructure:"max_rows"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Sandbox SandboxConfig `mapstructure:"sandbox"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("sqlgate")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.sqlgate")

	v.SetDefault("server.port", 8080)
	v.SetDefault("sandbox.query_timeout", "1s")
	v.SetDefault("sandbox.max_rows", 200)

	// A missing config file is fine; the defaults describe a working service.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Policy translates the sandbox section into an execution policy, falling
// back to defaults for unset or nonsensical values.
func (c *Config) Policy() sandbox.Policy {
	p := sandbox.DefaultPolicy()
	if c.Sandbox.QueryTimeout > 0 {
		p.QueryTimeout = c.Sandbox.QueryTimeout
	}
	if c.Sandbox.MaxRows > 0 {
		p.MaxRows = c.Sandbox.MaxRows
	}
	return p
}
