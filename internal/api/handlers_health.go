// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package api

import "net/http"

// HealthResponse is the liveness body.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// Health reports that the process is serving requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{OK: true})
}
