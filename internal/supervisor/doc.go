// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

/*
Package supervisor runs the relay's long-lived components under a suture v4
supervisor tree.

The tree has two layers. The messaging layer owns the WebSocket session
registry and the uptime reporter; the api layer owns the HTTP server.
Services that fail are restarted with suture's backoff. A service that
returns an error wrapping suture.ErrTerminateSupervisorTree stops the whole
tree, which the server binary treats as fatal.

Supervisor events are logged through sutureslog, using the zerolog-backed
slog.Logger from the logging package:

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err := tree.Serve(ctx)

See package services for the individual wrappers.
*/
package supervisor
