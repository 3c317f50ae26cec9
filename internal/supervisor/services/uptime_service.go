// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package services

import (
	"context"
	"time"

	"github.com/tomtom215/rfidrelay/internal/metrics"
)

// UptimeService refreshes the process uptime gauge on a fixed interval.
type UptimeService struct {
	start    time.Time
	interval time.Duration
	update   func(time.Time)
}

// NewUptimeService reports uptime since start every interval.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{
		start:    start,
		interval: interval,
		update:   metrics.UpdateUptime,
	}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.update(u.start)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.update(u.start)
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (u *UptimeService) String() string {
	return "uptime-reporter"
}
