// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package websocket

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/metrics"
	"github.com/tomtom215/rfidrelay/internal/models"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled indicates the parent context was canceled.
	// This is the normal graceful shutdown path (e.g., SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline indicates the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

const hubComponent = "websocket-hub"

// ErrHubClosed is returned by Join once the hub has shut down.
var ErrHubClosed = errors.New("websocket hub closed")

// Session is a registered push channel. *Client is the production
// implementation; tests substitute fakes.
type Session interface {
	ID() uint64
	RemoteAddr() string
	// Send queues data without blocking.
	Send(data []byte) error
	// Close releases the session. It must be idempotent.
	Close()
}

// Hub is the session registry. Membership changes take the write lock and
// enumeration holds the read lock for its whole duration, so a session whose
// Leave has returned is never handed to ForEach and a session whose Join has
// returned is always seen by the next ForEach.
type Hub struct {
	mu       sync.RWMutex
	sessions map[Session]struct{}
	welcome  []byte
	closed   bool
}

// NewHub creates an empty registry.
func NewHub() *Hub {
	welcome, err := json.Marshal(models.NewWelcome())
	if err != nil {
		logging.Error().Err(err).Msg("failed to serialize welcome command")
	}
	return &Hub{
		sessions: make(map[Session]struct{}),
		welcome:  welcome,
	}
}

// Join registers a session and queues the WELCOME command for it before any
// broadcast can reach it. A failure to queue the welcome is logged and the
// session stays registered.
func (h *Hub) Join(s Session) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return fmt.Errorf("join session %d: %w", s.ID(), ErrHubClosed)
	}
	h.sessions[s] = struct{}{}
	count := len(h.sessions)

	var welcomeErr error
	if h.welcome != nil {
		welcomeErr = s.Send(h.welcome)
	}
	h.mu.Unlock()

	metrics.SetWSConnections(count)
	logger := logging.WithComponent(hubComponent)
	if welcomeErr != nil {
		logger.Warn().Err(welcomeErr).Uint64("client_id", s.ID()).Msg("failed to queue welcome command")
	}
	logger.Info().
		Uint64("client_id", s.ID()).
		Str("remote_addr", s.RemoteAddr()).
		Int("total_clients", count).
		Msg("websocket client connected")
	return nil
}

// Leave deregisters and closes a session. It reports whether the session was
// registered; calling it again is a no-op.
func (h *Hub) Leave(s Session) bool {
	h.mu.Lock()
	if _, ok := h.sessions[s]; !ok {
		h.mu.Unlock()
		return false
	}
	delete(h.sessions, s)
	s.Close()
	count := len(h.sessions)
	h.mu.Unlock()

	metrics.SetWSConnections(count)
	logger := logging.WithComponent(hubComponent)
	logger.Info().
		Uint64("client_id", s.ID()).
		Str("remote_addr", s.RemoteAddr()).
		Int("total_clients", count).
		Msg("websocket client disconnected")
	return true
}

// ForEach calls fn once per registered session in ID order. A panic in fn is
// recovered and logged and iteration continues. fn must not call Join or
// Leave.
func (h *Hub) ForEach(fn func(Session)) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.sortedLocked() {
		h.visit(s, fn)
	}
}

func (h *Hub) visit(s Session, fn func(Session)) {
	defer func() {
		if r := recover(); r != nil {
			logger := logging.WithComponent(hubComponent)
			logger.Error().
				Uint64("client_id", s.ID()).
				Interface("panic", r).
				Msg("recovered panic while visiting websocket session")
		}
	}()
	fn(s)
}

// Count returns the number of registered sessions
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// RunWithContext blocks until ctx is canceled, then closes every session and
// returns ctx.Err(). It is designed for use with suture supervision; a
// restarted hub accepts joins again.
func (h *Hub) RunWithContext(ctx context.Context) error {
	h.mu.Lock()
	h.closed = false
	h.mu.Unlock()

	<-ctx.Done()

	closed := h.closeAll()
	logger := logging.WithComponent(hubComponent)
	logger.Info().
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", closed).
		Msg("websocket hub stopped")
	return ctx.Err()
}

// closeAll closes every session and refuses further joins.
func (h *Hub) closeAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions := h.sortedLocked()
	for _, s := range sessions {
		s.Close()
		delete(h.sessions, s)
	}
	h.closed = true
	metrics.SetWSConnections(0)
	return len(sessions)
}

// sortedLocked returns sessions ordered by ID (must be called with mu held).
func (h *Hub) sortedLocked() []Session {
	sessions := make([]Session, 0, len(h.sessions))
	for s := range h.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID() < sessions[j].ID()
	})
	return sessions
}

// getShutdownReason determines the shutdown reason from the context error.
func getShutdownReason(ctx context.Context) ShutdownReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}
