package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Engine    EngineConfig    `mapstructure:"engine"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Audit     AuditConfig     `mapstructure:"audit"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// LedgerConfig selects the bid ledger backend: "memory" keeps accepted bids
// in process, "bolt" persists them to an embedded database file.
type LedgerConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type EngineConfig struct {
	MaxCommitRetries int `mapstructure:"max_commit_retries"`
}

// RateLimitConfig bounds bid placement per client (token bucket).
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Rate    float64 `mapstructure:"rate"` // requests per second
	Burst   int     `mapstructure:"burst"`
}

type AuditConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

func Load() (*Config, error) {
	// Set default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("ledger.driver", "memory")
	viper.SetDefault("ledger.path", "bids.db")
	viper.SetDefault("engine.max_commit_retries", 3)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.rate", 5.0)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("audit.enabled", true)
	viper.SetDefault("audit.interval", time.Minute)

	// Configuration file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/bid-engine/")

	// Environment variable support
	viper.AutomaticEnv()
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("ledger.driver", "LEDGER_DRIVER")
	viper.BindEnv("ledger.path", "LEDGER_PATH")
	viper.BindEnv("engine.max_commit_retries", "ENGINE_MAX_COMMIT_RETRIES")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.rate", "RATE_LIMIT_RATE")
	viper.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")
	viper.BindEnv("audit.enabled", "AUDIT_ENABLED")
	viper.BindEnv("audit.interval", "AUDIT_INTERVAL")

	// Config file is optional; defaults and env vars cover the rest.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Ledger.Driver {
	case "memory", "bolt":
	default:
		return fmt.Errorf("config: unknown ledger driver %q", c.Ledger.Driver)
	}
	if c.Ledger.Driver == "bolt" && c.Ledger.Path == "" {
		return fmt.Errorf("config: bolt ledger requires a path")
	}
	return nil
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
