// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

// Package logging provides the zerolog-based structured logger used across the relay.
//
// A single global logger is configured once from main via Init. Handlers and
// services log through the package-level helpers (Info, Warn, Error, ...) or,
// when a request context is available, through Ctx(ctx), which adds the
// request_id and correlation_id fields installed by the HTTP middleware.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("read_point", point).Msg("RFID notification")
//	logging.Ctx(r.Context()).Warn().Msg("Unauthorized webhook call")
//
// The slog adapter (NewSlogLogger) exists for libraries that require a
// *slog.Logger, notably sutureslog in the supervisor tree.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
