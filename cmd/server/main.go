// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/rfidrelay/internal/api"
	"github.com/tomtom215/rfidrelay/internal/config"
	"github.com/tomtom215/rfidrelay/internal/exhibit"
	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/metrics"
	"github.com/tomtom215/rfidrelay/internal/relay"
	"github.com/tomtom215/rfidrelay/internal/supervisor"
	"github.com/tomtom215/rfidrelay/internal/supervisor/services"
	ws "github.com/tomtom215/rfidrelay/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetAppInfo(version)

	logging.Info().Str("version", version).Msg("Starting RFID relay")

	directory, err := exhibit.NewDirectory(cfg.ExhibitCatalog())
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid exhibit catalog")
	}
	logExhibits(directory)

	logSecurityPosture(cfg)

	hub := ws.NewHub()
	dispatcher := ws.NewDispatcher(hub)
	relayService := relay.NewService(directory, dispatcher)

	handler := api.NewHandler(cfg, relayService, dispatcher, hub)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewUptimeService(startTime, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if ctx.Err() == nil {
		// the tree stopped on its own: a service asked to terminate it
		logging.Error().Err(err).Msg("Supervisor tree terminated")
		stop()
		os.Exit(1)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Warn().Err(err).Msg("Supervisor shutdown error")
	}
	logging.Info().Msg("RFID relay stopped")
}

// logExhibits reports the loaded catalog, one debug line per read point.
func logExhibits(directory *exhibit.Directory) {
	logging.Info().Int("exhibits", directory.Len()).Msg("Exhibit directory loaded")
	for _, e := range directory.All() {
		logging.Debug().
			Str("exhibit_id", e.ID).
			Str("read_point", e.ReadPoint).
			Msg("Exhibit mapped")
	}
}

// logSecurityPosture warns about settings that leave the relay open.
func logSecurityPosture(cfg *config.Config) {
	if !cfg.Security.WebhookAuthEnabled() {
		logging.Warn().Msg("Webhook authentication is disabled (STARK_SHARED_SECRET not set)")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() {
		logging.Info().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}
	if cfg.Debug.BroadcastEnabled {
		logging.Info().Msg("Debug broadcast endpoint enabled at /api/debug/broadcast")
	}
}
