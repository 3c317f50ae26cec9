// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/rfidrelay/internal/config"
	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/models"
	"github.com/tomtom215/rfidrelay/internal/relay"
	ws "github.com/tomtom215/rfidrelay/internal/websocket"
)

// maxBodyBytes caps webhook and debug request bodies.
const maxBodyBytes = 1 << 20

// NotificationHandler turns a decoded provider payload into a broadcast.
type NotificationHandler interface {
	Handle(ctx context.Context, payload map[string]any) relay.Outcome
}

// Broadcaster fans a command out to every connected display.
type Broadcaster interface {
	Broadcast(ctx context.Context, cmd models.Command) ws.Report
}

// Handler holds the collaborators shared by all HTTP handlers.
type Handler struct {
	config        *config.Config
	notifications NotificationHandler
	broadcaster   Broadcaster
	wsHub         *ws.Hub
}

// NewHandler creates a Handler. wsHub may be nil, in which case WebSocket
// upgrades are refused with 503.
func NewHandler(cfg *config.Config, notifications NotificationHandler, broadcaster Broadcaster, wsHub *ws.Hub) *Handler {
	return &Handler{
		config:        cfg,
		notifications: notifications,
		broadcaster:   broadcaster,
		wsHub:         wsHub,
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin admits native clients, which send no Origin header,
// and browsers whose origin is on the CORS allow-list.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	if h.config == nil {
		return true
	}

	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Ctx(r.Context()).Warn().
		Str("origin", logging.SanitizeValue(origin)).
		Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
