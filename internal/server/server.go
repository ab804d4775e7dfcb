/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package server exposes literal.Len over HTTP and gRPC, next to the
// standard gRPC health service. Both recover precondition failures per
// request instead of terminating the process.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/grpcx"
	"dirpx.dev/solid/httpx"
	"dirpx.dev/solid/internal/cliconfig"
	"dirpx.dev/solid/mapper"
)

// ShutdownTimeout bounds the graceful HTTP shutdown once the context ends.
const ShutdownTimeout = 5 * time.Second

// ErrNoListeners is returned by Run when both addresses are empty.
var ErrNoListeners = errors.New("server: no http or grpc address configured")

// Server holds the HTTP router and the gRPC server.
type Server struct {
	log     zerolog.Logger
	escapes bool
	errs    httpx.Writer
	router  chi.Router
	grpc    *grpc.Server
	health  *health.Server
}

// New builds a Server. cfg.Escapes sets the default of the escapes query
// parameter.
func New(cfg cliconfig.Config, log zerolog.Logger) *Server {
	m := mapper.MustNew()
	s := &Server{
		log:     log,
		escapes: cfg.Escapes,
		errs:    httpx.Writer{Mapper: m},
		health:  health.NewServer(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.NoCache)
	r.Use(httpx.Recoverer(s.errs, log))
	r.Get("/healthz", s.healthz)
	r.Get("/v1/length", s.length)
	s.router = r

	s.grpc = grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcx.UnaryServerInterceptor(m, log, requestID)),
	)
	s.grpc.RegisterService(&lengthServiceDesc, s)
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// GRPC returns the gRPC server, for registering further services before
// Serve.
func (s *Server) GRPC() *grpc.Server { return s.grpc }

// Mapper returns the status mapper shared by both transports.
func (s *Server) Mapper() apis.Mapper { return s.errs.Mapper }

// Serve accepts connections on the given listeners until ctx ends, then
// shuts both servers down. A nil listener disables that transport.
func (s *Server) Serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	hs := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 2 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	if httpLis != nil {
		g.Go(func() error {
			s.log.Info().Str("addr", httpLis.Addr().String()).Msg("http server listening")
			if err := hs.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http: %w", err)
			}
			return nil
		})
	}
	if grpcLis != nil {
		g.Go(func() error {
			s.log.Info().Str("addr", grpcLis.Addr().String()).Msg("grpc server listening")
			if err := s.grpc.Serve(grpcLis); err != nil {
				return fmt.Errorf("grpc: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info().Msg("stopping servers")
		s.health.Shutdown()

		sctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		err := hs.Shutdown(sctx)
		s.grpc.GracefulStop()
		if err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Run listens on cfg.HTTPAddr and cfg.GRPCAddr and serves until ctx ends.
func Run(ctx context.Context, cfg cliconfig.Config, log zerolog.Logger) error {
	if cfg.HTTPAddr == "" && cfg.GRPCAddr == "" {
		return ErrNoListeners
	}
	var lc net.ListenConfig
	var httpLis, grpcLis net.Listener
	if cfg.HTTPAddr != "" {
		l, err := lc.Listen(ctx, "tcp", cfg.HTTPAddr)
		if err != nil {
			return fmt.Errorf("listen http: %w", err)
		}
		httpLis = l
	}
	if cfg.GRPCAddr != "" {
		l, err := lc.Listen(ctx, "tcp", cfg.GRPCAddr)
		if err != nil {
			if httpLis != nil {
				_ = httpLis.Close()
			}
			return fmt.Errorf("listen grpc: %w", err)
		}
		grpcLis = l
	}
	return New(cfg, log).Serve(ctx, httpLis, grpcLis)
}
