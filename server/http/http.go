// Package http is a thin lifecycle wrapper around net/http with
// middleware injected through server options.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/auditmind/agent/server"
)

type httpServer struct {
	options server.Options
	srv     *http.Server
}

func (s *httpServer) Address() string {
	return s.options.Address
}

func (s *httpServer) Start() error {
	slog.Info("http server listening", "address", s.options.Address)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func NewServer(handler http.Handler, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	return &httpServer{
		options: options,
		srv: &http.Server{
			Addr:              options.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}
