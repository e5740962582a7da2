package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go-integration/internal/config"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server serves the integration API until its context is cancelled, then
// drains in-flight requests.
type Server struct {
	http   *http.Server
	audit  AuditLogger
	logger *zap.Logger
}

func NewServer(handler http.Handler, cfg config.ServerConfig, auditLogger AuditLogger, logger ...*zap.Logger) *Server {
	l := zap.L().Named("http.server")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("http.server")
	}
	return &Server{
		http: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		audit:  auditLogger,
		logger: l,
	}
}

// Run listens on the configured port. It returns nil after a graceful
// shutdown triggered by ctx, or the listener error.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server running", zap.String("addr", ln.Addr().String()))
		serveErr <- s.http.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutdown requested", zap.Error(context.Cause(ctx)))
	s.audit.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta: map[string]any{
			"addr":   ln.Addr().String(),
			"reason": context.Cause(ctx).Error(),
		},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Forced shutdown", zap.Error(err))
		return err
	}
	s.logger.Info("Server exited gracefully")
	return nil
}
