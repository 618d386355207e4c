// Package config loads server settings from defaults, an optional YAML file
// and ASSISTANT_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "ASSISTANT"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Memory    MemoryConfig    `mapstructure:"memory"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	CORSOrigin string `mapstructure:"cors_origin"`
}

type ChatConfig struct {
	Delay       time.Duration `mapstructure:"delay"`
	Jitter      time.Duration `mapstructure:"jitter"`
	Seed        uint64        `mapstructure:"seed"`
	MaxMessages int           `mapstructure:"max_messages"`
}

type MemoryConfig struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL      string        `mapstructure:"url"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type DashboardConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origin", "*")
	v.SetDefault("chat.delay", 1500*time.Millisecond)
	v.SetDefault("chat.jitter", time.Duration(0))
	v.SetDefault("chat.seed", 0)
	v.SetDefault("chat.max_messages", 0)
	v.SetDefault("memory.backend", BackendMemory)
	v.SetDefault("memory.redis.url", "localhost:6379")
	v.SetDefault("memory.redis.password", "")
	v.SetDefault("memory.redis.db", 0)
	v.SetDefault("memory.redis.ttl", time.Hour)
	v.SetDefault("dashboard.interval", 2*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads the configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	if c.Chat.Delay < 0 {
		errs = append(errs, fmt.Errorf("chat.delay must not be negative"))
	}
	if c.Chat.Jitter < 0 {
		errs = append(errs, fmt.Errorf("chat.jitter must not be negative"))
	}
	if c.Chat.MaxMessages < 0 {
		errs = append(errs, fmt.Errorf("chat.max_messages must not be negative"))
	}
	switch c.Memory.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Memory.Redis.URL == "" {
			errs = append(errs, fmt.Errorf("memory.redis.url is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown memory.backend %q", c.Memory.Backend))
	}
	if c.Dashboard.Interval <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.interval must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
