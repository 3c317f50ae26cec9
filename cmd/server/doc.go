// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

// Package main is the entry point for the RFID relay server.
//
// The relay receives presence notifications from the museum's RFID tracking
// provider, maps the reporting read point to an exhibit and tells every
// connected display to start or stop that exhibit's content.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog, level and format from config
//  3. Exhibit directory: built from config or the built-in catalog; an
//     invalid catalog is fatal
//  4. Session registry, dispatcher and relay service
//  5. HTTP server (chi) and supervisor tree (suture)
//
// # Environment
//
//	PORT / HTTP_PORT       listen port (default 3000)
//	STARK_SHARED_SECRET    require "Authorization: Bearer <secret>" on the webhook
//	CORS_ORIGINS           comma-separated allow-list (default *)
//	DISABLE_RATE_LIMIT     turn off webhook rate limiting
//	DEBUG_BROADCAST_ENABLED  mount POST /api/debug/broadcast (default true)
//	LOG_LEVEL, LOG_FORMAT  logging
//	CONFIG_PATH            explicit config file
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree: the HTTP server drains for up
// to 10s and every display session receives a close frame.
//
// A listen failure terminates the tree and the process exits with status 1.
package main
