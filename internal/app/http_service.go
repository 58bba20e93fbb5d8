package app

import (
	"context"
	"errors"
	"net/http"
)

// HTTPService HTTP server wrapper
type HTTPService struct {
	server *http.Server
}

// NewHTTPService creates the HTTP service
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{Addr: addr, Handler: handler},
	}
}

// Name service name
func (s *HTTPService) Name() string { return "http" }

// Start serves until shutdown; a clean close is not an error
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the service gracefully
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
