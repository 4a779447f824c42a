package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// Server runs the HTTP surface next to the gRPC server.
type Server struct {
	srv    *http.Server
	lis    net.Listener
	logger *zap.Logger
}

// NewServer listens on port (0 picks a free one) and serves handler.
func NewServer(port int, handler http.Handler, logger *zap.Logger) (*Server, error) {
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 0 and 65535", port)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	return &Server{
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		lis:    lis,
		logger: logger.Named("http-server"),
	}, nil
}

// Start serves in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("HTTP server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.srv.Serve(s.lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
}

// Shutdown drains in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.srv.Shutdown(ctx)
}

// Addr returns the server's listening address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
