// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

// Package exhibit holds the static exhibit catalog and its read-point index.
package exhibit

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyReadPoint is returned when an exhibit has no read point.
	ErrEmptyReadPoint = errors.New("exhibit read point is empty")

	// ErrEmptyID is returned when an exhibit has no id.
	ErrEmptyID = errors.New("exhibit id is empty")

	// ErrDuplicateReadPoint is returned when two exhibits share a read point.
	ErrDuplicateReadPoint = errors.New("duplicate exhibit read point")
)

// Exhibit is one physical exhibit and the tracking read point that identifies it.
type Exhibit struct {
	ID        string
	Title     string
	ReadPoint string
}

// Directory maps read point names to exhibits. It is immutable after
// construction and safe for concurrent use without locking.
type Directory struct {
	byReadPoint map[string]Exhibit
}

// NewDirectory indexes exhibits by read point. Read points are matched
// exactly, including case and surrounding whitespace, as reported by the
// tracking provider.
func NewDirectory(exhibits []Exhibit) (*Directory, error) {
	byReadPoint := make(map[string]Exhibit, len(exhibits))
	for i, e := range exhibits {
		if e.ID == "" {
			return nil, fmt.Errorf("exhibit %d: %w", i, ErrEmptyID)
		}
		if e.ReadPoint == "" {
			return nil, fmt.Errorf("exhibit %q: %w", e.ID, ErrEmptyReadPoint)
		}
		if prev, ok := byReadPoint[e.ReadPoint]; ok {
			return nil, fmt.Errorf("%w: %q used by %q and %q", ErrDuplicateReadPoint, e.ReadPoint, prev.ID, e.ID)
		}
		byReadPoint[e.ReadPoint] = e
	}
	return &Directory{byReadPoint: byReadPoint}, nil
}

// Lookup returns the exhibit registered for readPoint.
func (d *Directory) Lookup(readPoint string) (Exhibit, bool) {
	e, ok := d.byReadPoint[readPoint]
	return e, ok
}

// Len returns the number of exhibits in the directory.
func (d *Directory) Len() int {
	return len(d.byReadPoint)
}

// All returns every exhibit sorted by id.
func (d *Directory) All() []Exhibit {
	out := make([]Exhibit, 0, len(d.byReadPoint))
	for _, e := range d.byReadPoint {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
