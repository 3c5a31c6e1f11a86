package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"postalform/internal/config"
	"postalform/internal/platform/logger"
)

type Server struct {
	server          *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:           handler,
			ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
			ReadHeaderTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
		logger:          log,
		shutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
	}
}

// Start binds the listener synchronously and serves in the background, so a
// bad address fails the fx start hook instead of a later goroutine.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("Failed to listen", logger.String("addr", s.server.Addr), logger.Error(err))
		return err
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("Starting HTTP server", logger.String("addr", ln.Addr().String()))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Failed to serve", logger.Error(err))
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("Server startup cancelled")
		return s.server.Shutdown(context.Background())
	default:
		return nil
	}
}

// Addr is the bound address once Start has succeeded, otherwise the
// configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server", logger.Duration("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
