// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

/*
Package services adapts relay components to suture.Service.

	type Service interface {
	    Serve(ctx context.Context) error
	}

Available services:

  - WebSocketHubService: runs websocket.Hub.RunWithContext; on shutdown every
    display session receives a close frame
  - HTTPServerService: ListenAndServe with graceful Shutdown on cancellation;
    a listen failure terminates the supervisor tree
  - UptimeService: refreshes the uptime gauge on a ticker

Every service implements fmt.Stringer so supervisor logs name it.
*/
package services
