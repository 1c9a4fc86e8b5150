// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/folio/internal/api"
	"github.com/tomtom215/folio/internal/catalog"
	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/cover"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/recommend"
	"github.com/tomtom215/folio/internal/supervisor"
	"github.com/tomtom215/folio/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))

	logging.Info().
		Str("version", version).
		Str("data_dir", cfg.Data.Dir).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Folio")

	snap, err := catalog.LoadDir(cfg.Data.Dir)
	if err != nil {
		logging.Fatal().Err(err).Str("data_dir", cfg.Data.Dir).Msg("Failed to load artifacts")
	}
	metrics.SetCatalogSize(snap.Catalog.Len(), snap.Index.Len())
	logging.Info().
		Int("books", snap.Catalog.Len()).
		Int("titles", snap.Index.Len()).
		Int("popular", len(snap.Popular)).
		Msg("Artifacts loaded")

	recommender := recommend.NewRecommender(snap, recommendConfig(cfg), logging.WithComponent("recommend"))

	coverCfg, err := coverConfig(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid cover configuration")
	}
	resolver := cover.NewResolver(coverCfg, cover.WithLogger(logging.Logger()))

	handler := api.NewHandler(recommender, resolver,
		api.WithVersion(version),
		api.WithEncodedCacheSize(coverCfg.CacheSize),
	)
	router := api.NewRouter(handler, middlewareConfig(cfg))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		// Cover resolution walks up to three sources.
		WriteTimeout: cfg.Server.Timeout + 3*coverCfg.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	if cfg.Cover.Warmup.Enabled && len(snap.Popular) > 0 {
		popular := recommender.Popular(context.Background(), 0)
		tree.AddBackgroundService(services.NewCoverWarmupService(resolver, popular, services.CoverWarmupConfig{
			Concurrency: cfg.Cover.Warmup.Concurrency,
		}, logging.Logger()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	stop()

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	if len(unstopped) > 0 {
		os.Exit(1)
	}

	logging.Info().Msg("Folio stopped gracefully")
}
