// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package api

import "github.com/tomtom215/rfidrelay/internal/models"

// Defaults for fields omitted from a debug broadcast request.
const (
	DefaultDebugTitle    = "Tundra"
	DefaultDebugType     = models.CommandPlayExhibit
	DefaultDebugAudioURL = "https://example.com/audio.mp3"
)

// DebugBroadcastRequest is the body of POST /api/debug/broadcast. Every
// field is optional and relayed verbatim; only lengths are capped.
type DebugBroadcastRequest struct {
	Title    string `json:"title" validate:"omitempty,max=200"`
	Type     string `json:"type" validate:"omitempty,max=64"`
	AudioURL string `json:"audioUrl" validate:"omitempty,max=2048"`
}

// applyDefaults fills omitted fields.
func (req *DebugBroadcastRequest) applyDefaults() {
	if req.Title == "" {
		req.Title = DefaultDebugTitle
	}
	if req.Type == "" {
		req.Type = DefaultDebugType
	}
	if req.AudioURL == "" {
		req.AudioURL = DefaultDebugAudioURL
	}
}

// Command converts the request into the command sent to displays.
func (req *DebugBroadcastRequest) Command() models.DebugCommand {
	return models.DebugCommand{
		Type:     req.Type,
		Title:    req.Title,
		AudioURL: req.AudioURL,
	}
}
