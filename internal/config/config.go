// Package config handles configuration loading for EdgarAI.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	SEC     SECConfig     `mapstructure:"sec"     yaml:"sec"`
	Retry   RetryConfig   `mapstructure:"retry"   yaml:"retry"`
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SECConfig holds the EDGAR access settings. UserAgent is the
// identification header the SEC requires on every request; requests
// without it are rejected upstream.
type SECConfig struct {
	UserAgent      string `mapstructure:"user_agent"       yaml:"user_agent"`
	TimeoutSec     int    `mapstructure:"timeout_sec"      yaml:"timeout_sec"`
	RatePerSec     int    `mapstructure:"rate_per_sec"     yaml:"rate_per_sec"`
	RateBurst      int    `mapstructure:"rate_burst"       yaml:"rate_burst"`
	DataBaseURL    string `mapstructure:"data_base_url"    yaml:"data_base_url"`
	ArchiveBaseURL string `mapstructure:"archive_base_url" yaml:"archive_base_url"`
}

// RetryConfig holds the resilient-fetch retry policy.
type RetryConfig struct {
	MaxAttempts         int `mapstructure:"max_attempts"           yaml:"max_attempts"`
	BaseWaitMS          int `mapstructure:"base_wait_ms"           yaml:"base_wait_ms"`
	MaxWaitMS           int `mapstructure:"max_wait_ms"            yaml:"max_wait_ms"`
	RateLimitCooldownMS int `mapstructure:"rate_limit_cooldown_ms" yaml:"rate_limit_cooldown_ms"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Timeout returns the per-request timeout as a duration.
func (c SECConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// BaseWait returns the initial retry backoff as a duration.
func (c RetryConfig) BaseWait() time.Duration {
	return time.Duration(c.BaseWaitMS) * time.Millisecond
}

// MaxWait returns the backoff cap as a duration.
func (c RetryConfig) MaxWait() time.Duration {
	return time.Duration(c.MaxWaitMS) * time.Millisecond
}

// RateLimitCooldown returns the 429 cooldown as a duration.
func (c RetryConfig) RateLimitCooldown() time.Duration {
	return time.Duration(c.RateLimitCooldownMS) * time.Millisecond
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.edgarai/config.yaml (home directory)
//  3. /etc/edgarai/config.yaml (system)
//
// Environment variables override config file values.
// Format: EDGARAI_<SECTION>_<KEY>, e.g., EDGARAI_SEC_USER_AGENT
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".edgarai"))
	v.AddConfigPath("/etc/edgarai")

	v.SetEnvPrefix("EDGARAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is fine, fall back to defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("EDGARAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// Default returns a configuration built purely from defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// SEC access defaults. The SEC asks for a contact address in the
	// User-Agent and allows at most 10 requests per second.
	v.SetDefault("sec.user_agent", "EdgarAI/1.0 (github.com/seenimoa/edgarai)")
	v.SetDefault("sec.timeout_sec", 30)
	v.SetDefault("sec.rate_per_sec", 10)
	v.SetDefault("sec.rate_burst", 10)
	v.SetDefault("sec.data_base_url", "https://data.sec.gov")
	v.SetDefault("sec.archive_base_url", "https://www.sec.gov/Archives/edgar/data")

	// Retry defaults
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.base_wait_ms", 1000)
	v.SetDefault("retry.max_wait_ms", 10000)
	v.SetDefault("retry.rate_limit_cooldown_ms", 1000)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads the identification header from the
// environment so a deployment can set its own contact address.
func overrideFromEnv(cfg *Config) {
	if ua := os.Getenv("EDGARAI_SEC_USER_AGENT"); ua != "" {
		cfg.SEC.UserAgent = ua
	}
}

// SetupLogging installs the process-wide slog handler per the config.
func SetupLogging(cfg LoggingConfig) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
