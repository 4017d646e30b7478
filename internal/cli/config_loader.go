// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"gpbooking/internal/config"
	"io/fs"

	"github.com/spf13/cobra"
)

// loadConfig builds the configuration in layers:
// defaults, config file, dotenv and environment, then command line flags.
func loadConfig(cmd *cobra.Command, globalOptions *GlobalOptions, serveOptions *ServeOptions) (*config.Config, error) {
	// 1. dotenv file, only an explicitly requested file has to exist
	if globalOptions.EnvFile != "" {
		if err := config.LoadEnvFile(globalOptions.EnvFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env-file") {
				return nil, fmt.Errorf("failed to load env file %s: %w", globalOptions.EnvFile, err)
			}
		}
	}

	// 2. config file, the environment may point to another one
	cfgFile := globalOptions.CfgFilePath
	if envPath, ok := config.ConfigPathFromEnv(); ok && !cmd.Flags().Changed("config_path") {
		cfgFile = envPath
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
		cfg = config.Default()
	}

	// 3. environment variables
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	// 4. flags take precedence
	applyFlags(cfg, cmd, globalOptions, serveOptions)

	// 5. validate
	if err := cfg.ParseAndValidate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

func applyFlags(c *config.Config, cmd *cobra.Command, globalOptions *GlobalOptions, serveOptions *ServeOptions) {
	if cmd.Flags().Changed("host") {
		c.Server.Host = serveOptions.Host
	}
	// port 0 is a valid choice (any free port), so check the flag was set
	if cmd.Flags().Changed("port") {
		c.Server.Port = serveOptions.Port
	}
	if globalOptions.LogLevel != "" {
		c.Logging.Level = globalOptions.LogLevel
	}
	if globalOptions.LogFormat != "" {
		c.Logging.Format = globalOptions.LogFormat
	}
}
