// Package config loads server settings from defaults, an optional config
// file and TEXTRPG_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TEXTRPG_HTTP_ADDR.
const EnvPrefix = "TEXTRPG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the resolved server configuration.
type Config struct {
	HTTPAddr    string
	SSHAddr     string
	HostKey     string
	WorldSize   int
	Seed        int64
	RecordRuns  bool
	SessionTTL  time.Duration
	MaxSessions int
	LogLevel    slog.Level
}

func defaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("ssh.addr", ":2222")
	v.SetDefault("ssh.host_key", "server_host_key")
	v.SetDefault("world.size", 50)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.record_runs", false)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max", 1000)
	v.SetDefault("log.level", "info")
}

// Load resolves the configuration. path may be empty; otherwise the file's
// extension picks the format (yaml, toml, json, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return Config{}, fmt.Errorf("log.level %q: %w", v.GetString("log.level"), ErrInvalid)
	}

	cfg := Config{
		HTTPAddr:    v.GetString("http.addr"),
		SSHAddr:     v.GetString("ssh.addr"),
		HostKey:     v.GetString("ssh.host_key"),
		WorldSize:   v.GetInt("world.size"),
		Seed:        v.GetInt64("game.seed"),
		RecordRuns:  v.GetBool("game.record_runs"),
		SessionTTL:  v.GetDuration("session.ttl"),
		MaxSessions: v.GetInt("session.max"),
		LogLevel:    level,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.WorldSize < 3:
		return fmt.Errorf("world.size %d must be at least 3: %w", c.WorldSize, ErrInvalid)
	case c.MaxSessions < 1:
		return fmt.Errorf("session.max %d must be at least 1: %w", c.MaxSessions, ErrInvalid)
	case c.SessionTTL <= 0:
		return fmt.Errorf("session.ttl %s must be positive: %w", c.SessionTTL, ErrInvalid)
	}
	return nil
}
