// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

// Package models defines the commands pushed to exhibit displays.
package models

// Command type discriminators as they appear in the "type" field on the wire.
const (
	CommandPlayExhibit = "PLAY_EXHIBIT"
	CommandStopExhibit = "STOP_EXHIBIT"
	CommandWelcome     = "WELCOME"
)

// WelcomeMessage is the text sent to every session right after it connects.
const WelcomeMessage = "WS connected"

// Command is a message pushed to connected sessions. Every variant serializes
// to a JSON object carrying its discriminator in the "type" field.
type Command interface {
	CommandType() string
}

// PlayExhibitCommand tells clients a tagged visitor entered an exhibit zone.
//
// Example:
//
//	{"type":"PLAY_EXHIBIT","exhibitId":"ex_tundra","title":"Tundra","shortId":"34CD"}
type PlayExhibitCommand struct {
	Type      string `json:"type"`
	ExhibitID string `json:"exhibitId"`
	Title     string `json:"title"`
	ShortID   string `json:"shortId"`
}

// CommandType implements Command.
func (c PlayExhibitCommand) CommandType() string { return c.Type }

// StopExhibitCommand tells clients a tagged visitor left an exhibit zone.
type StopExhibitCommand struct {
	Type      string `json:"type"`
	ExhibitID string `json:"exhibitId"`
	ShortID   string `json:"shortId"`
}

// CommandType implements Command.
func (c StopExhibitCommand) CommandType() string { return c.Type }

// WelcomeCommand is sent exactly once to each newly joined session.
type WelcomeCommand struct {
	Type    string `json:"type"`
	Message string `json:"msg"`
}

// CommandType implements Command.
func (c WelcomeCommand) CommandType() string { return c.Type }

// DebugCommand is an operator-triggered broadcast. Its type is whatever the
// operator asked for.
type DebugCommand struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	AudioURL string `json:"audioUrl"`
}

// CommandType implements Command.
func (c DebugCommand) CommandType() string { return c.Type }

// NewPlayExhibit builds a PLAY_EXHIBIT command.
func NewPlayExhibit(exhibitID, title, shortID string) PlayExhibitCommand {
	return PlayExhibitCommand{Type: CommandPlayExhibit, ExhibitID: exhibitID, Title: title, ShortID: shortID}
}

// NewStopExhibit builds a STOP_EXHIBIT command.
func NewStopExhibit(exhibitID, shortID string) StopExhibitCommand {
	return StopExhibitCommand{Type: CommandStopExhibit, ExhibitID: exhibitID, ShortID: shortID}
}

// NewWelcome builds the WELCOME command.
func NewWelcome() WelcomeCommand {
	return WelcomeCommand{Type: CommandWelcome, Message: WelcomeMessage}
}
