// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

/*
Package config provides layered configuration for the relay.

Configuration is loaded with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/rfidrelay/config.yaml)
 3. Environment variables

# Environment Variables

Server:
  - PORT or HTTP_PORT: listen port (default: 3000)
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)

Security:
  - STARK_SHARED_SECRET: when set, the webhook requires "Authorization: Bearer <secret>"
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: debug broadcast requests per window per IP (default: 30)
  - RATE_LIMIT_WINDOW: rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: turn the health and debug rate limiters off (default: false)

Debug:
  - DEBUG_BROADCAST_ENABLED: expose POST /api/debug/broadcast (default: true)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

# Exhibits

The exhibit catalog can only be set in the YAML file:

	exhibits:
	  - id: ex_tundra
	    title: Tundra
	    read_point: Tundra

When no exhibits are configured the built-in museum catalog is used.
*/
package config
