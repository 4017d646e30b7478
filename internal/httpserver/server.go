package httpserver

import (
	"context"
	"errors"
	"fmt"
	"gpbooking/internal/config"
	"log"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Server owns the listening socket and the HTTP server bound to it.
// A Server runs once.
type Server struct {
	cfg    config.ServerConfig
	srv    *http.Server
	logger *logrus.Logger

	ready chan struct{}
	addr  net.Addr
}

// New creates a server for handler. Nothing is bound until Run or Serve.
func New(cfg config.ServerConfig, handler http.Handler, logger *logrus.Logger) *Server {
	return &Server{
		cfg:    cfg,
		srv:    &http.Server{Handler: handler},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address. It is only valid after Ready is closed.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Run binds the configured address and serves until ctx is cancelled.
// A bind failure is returned immediately.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Addr()
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests for up to the configured shutdown timeout.
// A zero timeout waits for every request to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errLog := s.logger.WriterLevel(logrus.WarnLevel)
	defer errLog.Close()
	s.srv.ErrorLog = log.New(errLog, "", 0)

	s.addr = ln.Addr()
	port := s.cfg.Port
	if tcp, ok := s.addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}
	s.logger.WithField("addr", s.addr.String()).Infof("Server running on port %d", port)
	close(s.ready)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server...")

		shutdownCtx := context.Background()
		if s.cfg.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.cfg.ShutdownTimeout)
			defer cancel()
		}

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf("Server forced to shutdown: %v", err)
			s.srv.Close()
			return fmt.Errorf("shutdown: %w", err)
		}

		s.logger.Info("Server exiting")
		return nil
	})

	return g.Wait()
}
