package cli

import (
	"context"
	"fmt"
	"gpbooking/internal/config"
	"gpbooking/internal/httpserver"

	"github.com/sirupsen/logrus"
)

// runServer binds the listener and serves until ctx is cancelled.
func runServer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	handler := httpserver.NewHandler(cfg.Server, logger)
	srv := httpserver.New(cfg.Server, handler, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Errorf("Server failed: %v", err)
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
