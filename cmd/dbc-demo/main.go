// Package main runs the dbc demo service: the percentage conversion guarded
// by contracts, served over HTTP and gRPC, with trace output routed to the
// configured sink and contract outcomes exported as metrics.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"github.com/rafaeljc/dbc/internal/config"
	"github.com/rafaeljc/dbc/internal/grpcapi"
	"github.com/rafaeljc/dbc/internal/httpapi"
	"github.com/rafaeljc/dbc/internal/logger"
	"github.com/rafaeljc/dbc/internal/observability"
	"github.com/rafaeljc/dbc/internal/tracestore"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// main is the application entrypoint.
func main() {
	if err := run(); err != nil {
		log.Printf("Fatal error: %v", err)
		os.Exit(1)
	}
}

// run executes the service lifecycle.
func run() error {
	// -------------------------------------------------------------------------
	// 1. Configuration & Logging
	// -------------------------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger := logger.New(&cfg.App)
	slog.SetDefault(appLogger)
	cfg.LogConfig(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// -------------------------------------------------------------------------
	// 2. Contract Checker
	// -------------------------------------------------------------------------
	backend, err := tracestore.Open(ctx, cfg, appLogger, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to open trace sink: %w", err)
	}
	defer backend.Close()

	checker := contract.New(
		contract.WithMode(cfg.Contract.Mode),
		contract.WithSink(backend.Sink),
		contract.WithObserver(observability.ContractMetrics{}),
	)
	contract.SetDefault(checker)

	appLogger.Info("contract checker configured", slog.Any("checker", checker))

	// -------------------------------------------------------------------------
	// 3. Servers
	// -------------------------------------------------------------------------
	obsServer := observability.NewServer(appLogger, &cfg.Observability, backend.Checkers...)
	obsServer.Start()

	errChan := make(chan error, 2)

	api := httpapi.NewAPI(appLogger, checker, backend.Reader)
	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           api.Router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPC.Enabled {
		// Bind first so a busy port fails fast.
		listener, err := net.Listen("tcp", ":"+cfg.GRPC.Port)
		if err != nil {
			return fmt.Errorf("failed to bind port %s: %w", cfg.GRPC.Port, err)
		}

		grpcServer = grpcapi.NewServer(appLogger, checker,
			grpc.KeepaliveParams(keepalive.ServerParameters{MaxConnectionAge: cfg.GRPC.MaxConnectionAge}),
		)
		reflection.Register(grpcServer)

		go func() {
			appLogger.Info("gRPC server listening", slog.String("port", cfg.GRPC.Port))
			if err := grpcServer.Serve(listener); err != nil {
				errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
			}
		}()
	}

	// -------------------------------------------------------------------------
	// 4. Graceful Shutdown
	// -------------------------------------------------------------------------
	var serveErr error
	select {
	case serveErr = <-errChan:
		appLogger.Error("server failed, shutting down", slog.String("error", serveErr.Error()))
	case <-ctx.Done():
		appLogger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown failed", slog.String("error", err.Error()))
	}
	if grpcServer != nil {
		stopGRPC(shutdownCtx, grpcServer)
	}
	if err := obsServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("observability shutdown failed", slog.String("error", err.Error()))
	}

	appLogger.Info("service exited")
	return serveErr
}

// stopGRPC waits for in-flight RPCs until ctx expires, then forces the stop.
func stopGRPC(ctx context.Context, s *grpc.Server) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.Stop()
		<-done
	}
}
