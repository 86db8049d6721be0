package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arvind/retailscope/internal/config"
	"github.com/arvind/retailscope/internal/dataset"
	"github.com/arvind/retailscope/internal/logging"
	"github.com/arvind/retailscope/internal/metrics"
	"github.com/arvind/retailscope/internal/server"
	"github.com/arvind/retailscope/internal/service"
)

func main() {
	// Load .env file if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	source, err := buildSource(cfg.Dataset)
	if err != nil {
		logger.Error("failed to configure dataset source", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset source configured", "source", source.Describe())

	var reg *metrics.Registry
	var metricsHandler http.Handler
	if cfg.HTTP.MetricsEnabled {
		reg = metrics.NewRegistry()
		metricsHandler = reg.Handler()
	}

	store := dataset.NewStore(source, logger, reg)
	svc := service.NewTransactionService(store, reg)
	apiHandlers := server.NewAPIHandlers(logger, svc)

	router := server.NewRouter(logger, server.RouterDependencies{
		API:            apiHandlers,
		Health:         &server.HealthHandlers{Store: store},
		Metrics:        metricsHandler,
		AllowedOrigins: parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildSource(cfg config.DatasetConfig) (dataset.Source, error) {
	switch {
	case cfg.Path != "":
		return dataset.NewFileSource(cfg.Path), nil
	case cfg.URL != "":
		return dataset.NewHTTPSource(cfg.URL, cfg.FetchTimeout), nil
	default:
		return nil, dataset.ErrMissingSource
	}
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
