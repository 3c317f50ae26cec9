// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

/*
Package websocket provides the push channel to connected exhibit clients.

It uses the gorilla/websocket library with a hub-client architecture:

  - Hub: the session registry. Join, Leave and ForEach are safe to call
    concurrently. Join queues the WELCOME command before the session becomes
    visible to broadcasts.
  - Client: one connection with a buffered send queue and read/write
    goroutines.
  - Dispatcher: serializes a command once and delivers it to every registered
    session, capturing a per-session result.

Architecture:

	┌────────────┐    ForEach    ┌──────────┐
	│ Dispatcher │ ────────────► │   Hub    │
	└────────────┘               └────┬─────┘
	                                  │
	                   ┌──────────────┼──────────────┐
	                   │              │              │
	               Client 1       Client 2       Client 3

Each client has two goroutines:
  - readPump: drains inbound frames, answers control frames, and calls
    Hub.Leave when the peer goes away
  - writePump: writes queued frames and pings every 54 seconds

Delivery Semantics:

Delivery is best-effort and at most once per session. A send never blocks:
when a session's 256-frame queue is full it is evicted as a slow consumer
after the broadcast finishes. A session that closed concurrently is skipped.
Neither case is reported to the caller as an error.

Wire Format:

Every frame is a JSON text message with a "type" discriminator:

	{"type":"WELCOME","msg":"WS connected"}
	{"type":"PLAY_EXHIBIT","exhibitId":"ex_tundra","title":"Tundra","shortId":"34CD"}
	{"type":"STOP_EXHIBIT","exhibitId":"ex_tundra","shortId":"34CD"}

Connection Settings:
  - writeWait: 10 seconds
  - pongWait: 60 seconds
  - pingPeriod: 54 seconds
  - maxMessageSize: 512 KB
*/
package websocket
