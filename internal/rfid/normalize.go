// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

// Package rfid normalizes RFID tag notifications sent by the tracking provider.
//
// The provider has renamed its payload fields over time, so every logical
// attribute is read from an ordered list of accepted field names. The first
// field that is present wins. Normalization never fails: a missing or
// malformed field degrades to its default so the webhook can always be
// acknowledged.
package rfid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind is the presence transition reported by the provider.
type Kind string

const (
	KindEntrance Kind = "entrance"
	KindExit     Kind = "exit"
	KindUnknown  Kind = "unknown"
)

// Accepted field names per attribute, highest priority first.
var (
	KindFields       = []string{"NotificationType", "ReadType"}
	IdentifierFields = []string{"Identifier", "PrimaryIdentifier"}
	ReadPointFields  = []string{"IntelligencePointName", "ReadPointName", "IntelligencePoint"}
	TimestampFields  = []string{"ReadTime"}
)

// shortIDLength is the number of trailing identifier characters shown to visitors.
const shortIDLength = 4

// Event is one normalized notification. It lives for a single webhook call.
type Event struct {
	Kind       Kind
	Identifier string
	ReadPoint  string
	// HasReadPoint is false when none of the read point fields were present.
	HasReadPoint bool
	// RawTimestamp is the provider's ReadTime value, unparsed.
	RawTimestamp string
	// Timestamp is RawTimestamp parsed as RFC 3339; zero when absent or unparseable.
	Timestamp time.Time
}

// ShortIdentifier returns the last four characters of the identifier, or the
// whole identifier when it is shorter than that.
func (e Event) ShortIdentifier() string {
	return ShortIdentifier(e.Identifier)
}

// ShortIdentifier returns the last four code points of id, or id unchanged
// when it has fewer than four. Characters outside the Basic Multilingual
// Plane count once, so they are never split.
func ShortIdentifier(id string) string {
	runes := []rune(id)
	if len(runes) < shortIDLength {
		return id
	}
	return string(runes[len(runes)-shortIDLength:])
}

// Normalize converts a decoded JSON object into an Event. A nil payload
// yields an Unknown event with empty fields.
func Normalize(payload map[string]any) Event {
	kindValue, _ := firstPresent(payload, KindFields)
	identifier, _ := firstPresent(payload, IdentifierFields)
	readPoint, hasReadPoint := firstPresent(payload, ReadPointFields)
	rawTimestamp, _ := firstPresent(payload, TimestampFields)

	event := Event{
		Kind:         ParseKind(kindValue),
		Identifier:   identifier,
		ReadPoint:    readPoint,
		HasReadPoint: hasReadPoint,
		RawTimestamp: rawTimestamp,
	}
	if rawTimestamp != "" {
		if ts, err := time.Parse(time.RFC3339Nano, rawTimestamp); err == nil {
			event.Timestamp = ts
		}
	}
	return event
}

// ParseKind maps a provider notification type to a Kind, ignoring case.
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "entrance":
		return KindEntrance
	case "exit":
		return KindExit
	default:
		return KindUnknown
	}
}

// firstPresent returns the value of the first field in names that is present.
func firstPresent(payload map[string]any, names []string) (string, bool) {
	for _, name := range names {
		if s, ok := presentString(payload[name]); ok {
			return s, true
		}
	}
	return "", false
}

// presentString reports whether v counts as present and returns its text form.
// Empty strings, zero numbers, false and null are absent, as are objects and
// arrays, which have no meaningful text form.
func presentString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, val != ""
	case bool:
		if !val {
			return "", false
		}
		return "true", true
	case float64:
		if val == 0 {
			return "", false
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		if val == 0 {
			return "", false
		}
		return strconv.Itoa(val), true
	case int64:
		if val == 0 {
			return "", false
		}
		return strconv.FormatInt(val, 10), true
	case fmt.Stringer:
		s := val.String()
		return s, s != "" && s != "0"
	default:
		return "", false
	}
}
