package cli

import (
	"context"
	"gpbooking/internal/logging"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ServeOptions struct {
	Host string
	Port int
}

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	serveOptions := &ServeOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, globalOptions, serveOptions)
		},
	}

	serveOptions.registerFlags(serveCmd.Flags())

	return serveCmd
}

func (options *ServeOptions) registerFlags(fs *pflag.FlagSet) {
	// flags for the serve command only
	fs.StringVar(&options.Host, "host", "", "Interface to listen on, empty for all. (Env: GPBOOKING_HOST)")
	fs.IntVar(&options.Port, "port", 0, "Port for the HTTP server. (Env: PORT, default 5000)")
}

// serve loads the configuration and runs the server until SIGINT or SIGTERM.
func serve(cmd *cobra.Command, globalOptions *GlobalOptions, serveOptions *ServeOptions) error {
	cfg, err := loadConfig(cmd, globalOptions, serveOptions)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runServer(ctx, cfg, logger)
}
