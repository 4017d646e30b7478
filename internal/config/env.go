package config

import (
	"fmt"
	"gpbooking/internal/shared"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variables read at startup.
const (
	EnvPort       = "PORT"
	EnvHost       = "GPBOOKING_HOST"
	EnvLogLevel   = "GPBOOKING_LOG_LEVEL"
	EnvLogFormat  = "GPBOOKING_LOG_FORMAT"
	EnvConfigPath = "GPBOOKING_CONFIG_PATH"
)

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables that are already set keep their value.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

func newEnv() *viper.Viper {
	v := viper.New()
	// BindEnv only fails when called without a key.
	_ = v.BindEnv("server.port", EnvPort)
	_ = v.BindEnv("server.host", EnvHost)
	_ = v.BindEnv("logging.level", EnvLogLevel)
	_ = v.BindEnv("logging.format", EnvLogFormat)
	_ = v.BindEnv("config_path", EnvConfigPath)
	return v
}

// ConfigPathFromEnv returns the config file path set in the environment, if any.
func ConfigPathFromEnv() (string, bool) {
	v := newEnv()
	if !v.IsSet("config_path") {
		return "", false
	}
	return v.GetString("config_path"), true
}

// ApplyEnv overrides c with the values found in the environment.
// Empty variables count as unset.
func ApplyEnv(c *Config) error {
	v := newEnv()

	if v.IsSet("server.port") {
		raw := strings.TrimSpace(v.GetString("server.port"))
		p, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", shared.ErrInvalidPort, EnvPort, raw)
		}
		c.Server.Port = p
	}
	if v.IsSet("server.host") {
		c.Server.Host = v.GetString("server.host")
	}
	if v.IsSet("logging.level") {
		c.Logging.Level = v.GetString("logging.level")
	}
	if v.IsSet("logging.format") {
		c.Logging.Format = v.GetString("logging.format")
	}
	return nil
}
