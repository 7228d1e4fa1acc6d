package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout.Duration)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "firmos.db", filepath.Base(cfg.Store.Path))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.AdvisorConfigured())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firmos.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
addr = ":9090"
firm_name = "Alvarez Law"
request_timeout = "15s"

[store]
path = "/var/lib/firmos/firm.db"

[cache]
enabled = false

[log]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "Alvarez Law", cfg.Server.FirmName)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout.Duration)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout.Duration, "unset keys keep defaults")
	assert.Equal(t, "/var/lib/firmos/firm.db", cfg.Store.Path)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad duration", "[server]\nrequest_timeout = \"soon\"\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
		{"malformed", "[server\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "firmos.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"FIRMOS_ADDR":          ":7070",
		"FIRMOS_DB_PATH":       "/tmp/firm.db",
		"FIRMOS_DATA_DIR":      "/tmp/firm-cache",
		"FIRMOS_ADVISOR_MODEL": "gemini-pro",
		"GOOGLE_API_KEY":       "google-key",
		"GEMINI_API_KEY":       "gemini-key",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	ApplyEnv(cfg, lookup)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/tmp/firm.db", cfg.Store.Path)
	assert.Equal(t, "/tmp/firm-cache", cfg.Cache.DataDir)
	assert.Equal(t, "gemini-pro", cfg.Advisor.Model)
	assert.Equal(t, "gemini-key", cfg.Advisor.APIKey)
	assert.True(t, cfg.AdvisorConfigured())

	delete(env, "GEMINI_API_KEY")
	cfg = DefaultConfig()
	ApplyEnv(cfg, lookup)
	assert.Equal(t, "google-key", cfg.Advisor.APIKey)
}
