// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

// Package relay turns RFID notifications into exhibit commands for connected
// clients.
package relay

import (
	"context"

	"github.com/tomtom215/rfidrelay/internal/exhibit"
	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/metrics"
	"github.com/tomtom215/rfidrelay/internal/models"
	"github.com/tomtom215/rfidrelay/internal/rfid"
	"github.com/tomtom215/rfidrelay/internal/websocket"
)

// Outcome records how a notification was resolved.
type Outcome string

const (
	OutcomePlay               Outcome = "play"
	OutcomeStop               Outcome = "stop"
	OutcomeIgnoredUnknownKind Outcome = "ignored_unknown_kind"
	OutcomeIgnoredUnmapped    Outcome = "ignored_unmapped"
)

// Directory resolves a read point to an exhibit.
type Directory interface {
	Lookup(readPoint string) (exhibit.Exhibit, bool)
}

// Broadcaster delivers a command to every connected session.
type Broadcaster interface {
	Broadcast(ctx context.Context, cmd models.Command) websocket.Report
}

// Service is the ingestion handler. It holds no per-call state.
type Service struct {
	directory   Directory
	broadcaster Broadcaster
}

// NewService creates a relay service.
func NewService(directory Directory, broadcaster Broadcaster) *Service {
	return &Service{directory: directory, broadcaster: broadcaster}
}

// Handle normalizes one webhook payload and broadcasts the resulting command,
// if any. It never fails; the outcome is returned for logging and tests.
func (s *Service) Handle(ctx context.Context, payload map[string]any) Outcome {
	logger := logging.Ctx(ctx)
	logger.Debug().Interface("payload", payload).Msg("rfid notification received")

	event := rfid.Normalize(payload)
	outcome, exhibitID, delivered := s.resolve(ctx, event)

	metrics.RecordNotification(string(event.Kind), string(outcome))
	logger.Info().
		Str("kind", string(event.Kind)).
		Str("identifier", logging.SanitizeValue(event.Identifier)).
		Str("short_id", logging.SanitizeValue(event.ShortIdentifier())).
		Str("read_point", logging.SanitizeValue(event.ReadPoint)).
		Str("read_time", logging.SanitizeValue(event.RawTimestamp)).
		Str("exhibit_id", exhibitID).
		Str("outcome", string(outcome)).
		Int("delivered", delivered).
		Msg("rfid notification processed")

	return outcome
}

func (s *Service) resolve(ctx context.Context, event rfid.Event) (Outcome, string, int) {
	if event.Kind != rfid.KindEntrance && event.Kind != rfid.KindExit {
		return OutcomeIgnoredUnknownKind, "", 0
	}
	if !event.HasReadPoint {
		return OutcomeIgnoredUnmapped, "", 0
	}

	ex, ok := s.directory.Lookup(event.ReadPoint)
	if !ok {
		return OutcomeIgnoredUnmapped, "", 0
	}

	shortID := event.ShortIdentifier()
	if event.Kind == rfid.KindEntrance {
		report := s.broadcaster.Broadcast(ctx, models.NewPlayExhibit(ex.ID, ex.Title, shortID))
		return OutcomePlay, ex.ID, report.Delivered
	}
	report := s.broadcaster.Broadcast(ctx, models.NewStopExhibit(ex.ID, shortID))
	return OutcomeStop, ex.ID, report.Delivered
}
