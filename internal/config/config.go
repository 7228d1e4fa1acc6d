// Package config loads firmos settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "firmos.toml"

// Config is the complete firmos configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
	Cache   CacheConfig   `toml:"cache"`
	Advisor AdvisorConfig `toml:"advisor"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	FirmName        string   `toml:"firm_name"`
	RequestTimeout  Duration `toml:"request_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// StoreConfig configures the SQLite record store.
type StoreConfig struct {
	Path string `toml:"path"`
}

// CacheConfig configures the local durable cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	DataDir string `toml:"data_dir"`
}

// AdvisorConfig configures the advisory chat model. An empty APIKey
// leaves the advisor unconfigured.
type AdvisorConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Duration is a time.Duration written as a string ("30s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	dataDir := defaultDataDir()
	return &Config{
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			FirmName:        "Law Firm OS",
			RequestTimeout:  Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
			AllowedOrigins:  []string{"*"},
		},
		Store: StoreConfig{
			Path: filepath.Join(dataDir, "firmos.db"),
		},
		Cache: CacheConfig{
			Enabled: true,
			DataDir: dataDir,
		},
		Advisor: AdvisorConfig{
			Model: "gemini-2.0-flash",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".firmos"
	}
	return filepath.Join(home, ".firmos")
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides. An empty path tries DefaultFileName and is not an
// error when that file is missing.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	ApplyEnv(cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("FIRMOS_ADDR"); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := lookup("FIRMOS_DB_PATH"); ok && v != "" {
		cfg.Store.Path = v
	}
	if v, ok := lookup("FIRMOS_DATA_DIR"); ok && v != "" {
		cfg.Cache.DataDir = v
	}
	if v, ok := lookup("FIRMOS_ADVISOR_MODEL"); ok && v != "" {
		cfg.Advisor.Model = v
	}
	// GEMINI_API_KEY wins over GOOGLE_API_KEY.
	for _, key := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if v, ok := lookup(key); ok && v != "" {
			cfg.Advisor.APIKey = v
		}
	}
}

// Validate checks settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Store.Path == "" {
		return errors.New("store.path is required")
	}
	if c.Cache.Enabled && c.Cache.DataDir == "" {
		return errors.New("cache.data_dir is required when the cache is enabled")
	}
	if c.Server.RequestTimeout.Duration <= 0 {
		return fmt.Errorf("server.request_timeout must be positive (got %s)", c.Server.RequestTimeout)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q (expected debug, info, warn or error)", c.Log.Level)
	}
	return nil
}

// AdvisorConfigured reports whether an advisor API key is set.
func (c *Config) AdvisorConfigured() bool {
	return c.Advisor.APIKey != ""
}
