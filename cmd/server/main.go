package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/notifyhub/pushover/internal/api"
	"github.com/notifyhub/pushover/internal/config"
	"github.com/notifyhub/pushover/internal/logging"
	"github.com/notifyhub/pushover/internal/metrics"
	"github.com/notifyhub/pushover/internal/service"
	"github.com/notifyhub/pushover/internal/tracing"
	"github.com/notifyhub/pushover/pkg/pushover"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// ---- tracing ----
	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		logger.Fatal("failed to set up tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracer shutdown error", zap.Error(err))
		}
	}()

	// ---- pushover ----
	pushover.Init()
	defer pushover.Cleanup()

	endpoint, err := cfg.Pushover.Endpoint()
	if err != nil {
		logger.Fatal("invalid pushover endpoint", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	client := pushover.NewClient(
		pushover.WithTimeout(cfg.Pushover.Timeout),
		pushover.WithHooks(m.Hooks()),
	)
	svc := service.NewMessageService(client, endpoint, service.Defaults{
		User:   cfg.Pushover.User,
		Device: cfg.Pushover.Device,
	}, logger)

	// ---- HTTP server ----
	router := api.NewRouter(svc, reg, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("upstream", endpoint.URI()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	// In-flight submissions finish within the shutdown window.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
