// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package api

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// RFIDNotification receives a presence event from the RFID provider.
//
// Every well-formed call is acknowledged with an empty 200, whether or not it
// produced a broadcast: the provider only needs to know the event arrived.
// A body that is valid JSON but not an object is handled as an empty payload,
// as is any body not declared as JSON.
func (h *Handler) RFIDNotification(w http.ResponseWriter, r *http.Request) {
	payload, status, err := decodePayload(w, r)
	if err != nil {
		code := ErrCodeBadRequest
		if status == http.StatusRequestEntityTooLarge {
			code = ErrCodePayloadTooLarge
		}
		respondError(w, status, code, "Invalid notification body", err)
		return
	}

	h.notifications.Handle(r.Context(), payload)
	respondOK(w)
}

// decodePayload reads a size-limited JSON body into a generic map. It
// returns the HTTP status to use when decoding fails.
func decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, int, error) {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		return map[string]any{}, http.StatusOK, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, http.StatusRequestEntityTooLarge, err
		}
		return nil, http.StatusBadRequest, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, http.StatusOK, nil
	}

	var decoded any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		return nil, http.StatusBadRequest, err
	}

	payload, ok := decoded.(map[string]any)
	if !ok {
		return map[string]any{}, http.StatusOK, nil
	}
	return payload, http.StatusOK, nil
}

// isJSONContentType reports whether a Content-Type header names JSON:
// application/json or any +json suffix type, parameters ignored.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
