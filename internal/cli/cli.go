package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is overridden at build time with -ldflags "-X gpbooking/internal/cli.Version=...".
var Version = "dev"

type GlobalOptions struct {
	CfgFilePath string
	EnvFile     string
	LogLevel    string
	LogFormat   string
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}
	serveOptions := &ServeOptions{}

	rootCMD := &cobra.Command{
		Use:   "gpbooking",
		Short: "GP Booking API",
		Long:  "HTTP API for booking appointments with general practitioners.",
		// Running without a subcommand starts the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, globalOptions, serveOptions)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// register global flags
	globalOptions.registerFlags(rootCMD.PersistentFlags())
	serveOptions.registerFlags(rootCMD.Flags())

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewVersionCommand())

	return rootCMD
}

func (options *GlobalOptions) registerFlags(fs *pflag.FlagSet) {
	// flags that can be used for each command
	fs.StringVar(&options.CfgFilePath, "config_path", "config.toml", "Path to the base configuration file. (Env: GPBOOKING_CONFIG_PATH)")
	fs.StringVar(&options.EnvFile, "env-file", ".env", "Path to a dotenv file loaded into the environment when present.")
	fs.StringVar(&options.LogLevel, "log-level", "", "Logging level (trace, debug, info, warn, error). (Env: GPBOOKING_LOG_LEVEL)")
	fs.StringVar(&options.LogFormat, "log-format", "", "Log output format (json, text). (Env: GPBOOKING_LOG_FORMAT)")
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
