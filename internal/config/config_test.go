// filepath: internal/config/config_test.go
package config

import (
	"gpbooking/internal/shared"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		hasError bool
	}{
		{"100KB", 100 * 1024, false},
		{"1MB", 1024 * 1024, false},
		{"1GB", 1024 * 1024 * 1024, false},
		{"100", 100, false},
		{"1024B", 1024, false},
		{" 4 KB ", 4096, false},
		{"2mb", 2 * 1024 * 1024, false},
		{"invalid", 0, true},
		{"10XB", 0, true},
		{"-10KB", 0, true},
		{"8589934591G", 8589934591 << 30, false},
		{"8589934592G", 0, true},
		{"99999999999G", 0, true},
		{"99999999999999999999", 0, true},
	}

	for _, tc := range tests {
		val, err := parseSize(tc.input)
		if tc.hasError {
			assert.ErrorIs(t, err, shared.ErrInvalidSize, "Expected error for input: %s", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %s", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %s", tc.input)
		}
	}
}

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, int64(100*1024), cfg.Server.MaxJSONBodyBytes)
		assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("Empty Strings Fall Back", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, DefaultMaxJSONBody, cfg.Server.MaxJSONBody)
		assert.Equal(t, DefaultShutdownTimeout, cfg.Server.Shutdown)
		assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
		assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	})

	t.Run("Level Is Case Insensitive", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "DEBUG"
		require.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	invalid := []struct {
		name   string
		mutate func(c *Config)
		target error
	}{
		{"Port Too Large", func(c *Config) { c.Server.Port = 70000 }, shared.ErrInvalidPort},
		{"Negative Port", func(c *Config) { c.Server.Port = -1 }, shared.ErrInvalidPort},
		{"Bad Body Size", func(c *Config) { c.Server.MaxJSONBody = "lots" }, shared.ErrInvalidSize},
		{"Bad Duration", func(c *Config) { c.Server.Shutdown = "soon" }, shared.ErrInvalidDuration},
		{"Negative Duration", func(c *Config) { c.Server.Shutdown = "-1s" }, shared.ErrInvalidDuration},
		{"Unknown Level", func(c *Config) { c.Logging.Level = "loud" }, shared.ErrInvalidLogLevel},
		{"Unknown Format", func(c *Config) { c.Logging.Format = "xml" }, shared.ErrInvalidLogFormat},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.ParseAndValidate(), tc.target)
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, ":5000", ServerConfig{Port: 5000}.Addr())
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: 8080}.Addr())
	assert.Equal(t, "[::1]:0", ServerConfig{Host: "::1"}.Addr())
}

func TestLoadConfig(t *testing.T) {
	t.Run("Partial File Keeps Defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := []byte(`
[server]
port = 6060
[logging]
level = "error"
`)
		require.NoError(t, os.WriteFile(path, content, 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 6060, cfg.Server.Port)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, DefaultMaxJSONBody, cfg.Server.MaxJSONBody)
		assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Broken File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("Port From Environment", func(t *testing.T) {
		t.Setenv(EnvPort, "8081")
		cfg := Default()
		require.NoError(t, ApplyEnv(cfg))
		assert.Equal(t, 8081, cfg.Server.Port)
	})

	t.Run("Empty Port Keeps Default", func(t *testing.T) {
		t.Setenv(EnvPort, "")
		cfg := Default()
		require.NoError(t, ApplyEnv(cfg))
		assert.Equal(t, DefaultPort, cfg.Server.Port)
	})

	t.Run("Non Numeric Port", func(t *testing.T) {
		t.Setenv(EnvPort, "http")
		cfg := Default()
		assert.ErrorIs(t, ApplyEnv(cfg), shared.ErrInvalidPort)
	})

	t.Run("Other Variables", func(t *testing.T) {
		t.Setenv(EnvHost, "127.0.0.1")
		t.Setenv(EnvLogLevel, "warn")
		t.Setenv(EnvLogFormat, "text")
		cfg := Default()
		require.NoError(t, ApplyEnv(cfg))
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format)
	})

	t.Run("Config Path", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/etc/gpbooking.toml")
		path, ok := ConfigPathFromEnv()
		assert.True(t, ok)
		assert.Equal(t, "/etc/gpbooking.toml", path)
	})
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7171\nGPBOOKING_HOST=localhost\n"), 0644))

	// Already set variables win over the file.
	t.Setenv(EnvHost, "0.0.0.0")
	t.Setenv(EnvPort, "")
	os.Unsetenv(EnvPort)

	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { os.Unsetenv(EnvPort) })

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, 7171, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}
