// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/validation"
)

// DebugBroadcast lets an operator push an arbitrary command to every display
// without an RFID read. The route is only mounted when enabled in config.
func (h *Handler) DebugBroadcast(w http.ResponseWriter, r *http.Request) {
	var req DebugBroadcastRequest

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body too large", err)
			return
		}
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Failed to read request body", err)
		return
	}

	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
			return
		}
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	req.applyDefaults()

	report := h.broadcaster.Broadcast(r.Context(), req.Command())
	logging.Ctx(r.Context()).Info().
		Str("type", req.Type).
		Str("title", logging.SanitizeValue(req.Title)).
		Int("delivered", report.Delivered).
		Int("attempted", report.Attempted).
		Msg("Debug broadcast sent")

	respondOK(w)
}
