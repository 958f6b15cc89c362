package httpd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
)

// Server runs the asset handler on a listen address until the context is
// canceled.
type Server struct {
	srv *http.Server
	log ports.Logger
}

// NewServer creates a Server for the given handler.
func NewServer(addr string, handler *Handler, log ports.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle(handler.prefix+"/", handler)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.ListenAndServe()
	}()

	s.log.Info("serving assets on " + s.srv.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "failed to shut down asset server")
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "asset server failed")
	}
}
