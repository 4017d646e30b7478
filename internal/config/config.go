// filepath: internal/config/config.go
package config

import (
	"fmt"
	"gpbooking/internal/shared"
	"math"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied before the config file, environment and flags.
const (
	DefaultPort            = 5000
	DefaultMaxJSONBody     = "100KB"
	DefaultShutdownTimeout = "30s"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
)

// Config holds the application's configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MaxJSONBody string `toml:"max_json_body"`    // e.g. "100KB", "1MB"
	Shutdown    string `toml:"shutdown_timeout"` // e.g. "30s"

	MaxJSONBodyBytes int64         `toml:"-"` // Runtime computed value
	ShutdownTimeout  time.Duration `toml:"-"` // Runtime computed value
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "text"
}

// Default returns a configuration with every field at its default value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        DefaultPort,
			MaxJSONBody: DefaultMaxJSONBody,
			Shutdown:    DefaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadConfig loads the configuration from a TOML file on top of the defaults.
// Keys missing from the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the host:port the listener binds to.
// An empty host listens on all interfaces.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable sizes.
func (c *Config) ParseAndValidate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d is outside 0-65535", shared.ErrInvalidPort, c.Server.Port)
	}

	if c.Server.MaxJSONBody == "" {
		c.Server.MaxJSONBody = DefaultMaxJSONBody
	}
	sizeBytes, err := parseSize(c.Server.MaxJSONBody)
	if err != nil {
		return fmt.Errorf("invalid max_json_body: %w", err)
	}
	c.Server.MaxJSONBodyBytes = sizeBytes

	if c.Server.Shutdown == "" {
		c.Server.Shutdown = DefaultShutdownTimeout
	}
	timeout, err := time.ParseDuration(c.Server.Shutdown)
	if err != nil || timeout < 0 {
		return fmt.Errorf("invalid shutdown_timeout: %w: %q", shared.ErrInvalidDuration, c.Server.Shutdown)
	}
	c.Server.ShutdownTimeout = timeout

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", shared.ErrInvalidLogLevel, c.Logging.Level)
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("%w: %q", shared.ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

var sizePattern = regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G)?B?$`)

// parseSize parses a size string (e.g., "100KB", "1MB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	matches := sizePattern.FindStringSubmatch(strings.TrimSpace(sizeStr))
	if len(matches) < 2 {
		return 0, fmt.Errorf("%w: %q", shared.ErrInvalidSize, sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", shared.ErrInvalidSize, matches[1])
	}

	var shift uint
	switch strings.ToUpper(matches[2]) {
	case "G":
		shift = 30
	case "M":
		shift = 20
	case "K":
		shift = 10
	}
	if value > math.MaxInt64>>shift {
		return 0, fmt.Errorf("%w: %q overflows int64", shared.ErrInvalidSize, sizeStr)
	}
	return value << shift, nil
}
