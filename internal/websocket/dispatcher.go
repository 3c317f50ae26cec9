// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/metrics"
	"github.com/tomtom215/rfidrelay/internal/models"
)

// Registry is the part of the session registry the dispatcher needs.
type Registry interface {
	ForEach(fn func(Session))
	Leave(s Session) bool
}

// DeliveryResult is the outcome of one per-session send.
type DeliveryResult string

const (
	ResultDelivered  DeliveryResult = "delivered"
	ResultClosed     DeliveryResult = "closed"
	ResultBufferFull DeliveryResult = "buffer_full"
	ResultFailed     DeliveryResult = "failed"
	ResultPanic      DeliveryResult = "panic"
)

// Report summarizes a broadcast. It is informational only; callers are never
// expected to act on delivery failures.
type Report struct {
	Command   string
	Attempted int
	Delivered int
	// Failed counts non-delivered attempts by result.
	Failed map[DeliveryResult]int
	// Evicted is the number of sessions removed from the registry afterwards.
	Evicted int
	// Err is set when the command could not be serialized; nothing was sent.
	Err error
}

// Dispatcher fans a command out to every registered session.
type Dispatcher struct {
	registry Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Broadcast serializes cmd once and attempts delivery to every session
// registered at call time. Failures are logged and counted but never abort
// the loop. Sessions that failed are removed from the registry once
// enumeration is finished.
func (d *Dispatcher) Broadcast(ctx context.Context, cmd models.Command) Report {
	report := Report{Command: cmd.CommandType(), Failed: make(map[DeliveryResult]int)}
	logger := logging.Ctx(ctx)

	data, err := json.Marshal(cmd)
	if err != nil {
		report.Err = fmt.Errorf("serialize %s command: %w", report.Command, err)
		logger.Error().Err(report.Err).Msg("broadcast aborted")
		return report
	}

	metrics.RecordBroadcast(report.Command)

	type failure struct {
		session Session
		result  DeliveryResult
	}
	var stale []failure

	d.registry.ForEach(func(s Session) {
		report.Attempted++
		result, sendErr := deliver(s, data)
		metrics.RecordDelivery(string(result))

		if result == ResultDelivered {
			report.Delivered++
			return
		}
		report.Failed[result]++
		stale = append(stale, failure{session: s, result: result})
		logger.Warn().
			Err(sendErr).
			Uint64("client_id", s.ID()).
			Str("result", string(result)).
			Str("command", report.Command).
			Msg("websocket delivery failed")
	})

	for _, f := range stale {
		if d.registry.Leave(f.session) {
			report.Evicted++
			if f.result == ResultBufferFull {
				metrics.RecordEviction()
			}
		}
	}

	logger.Debug().
		Str("command", report.Command).
		Int("attempted", report.Attempted).
		Int("delivered", report.Delivered).
		Int("evicted", report.Evicted).
		Msg("broadcast complete")
	return report
}

// deliver performs one send and classifies the outcome.
func deliver(s Session, data []byte) (result DeliveryResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ResultPanic
			err = fmt.Errorf("send panicked: %v", r)
		}
	}()

	err = s.Send(data)
	switch {
	case err == nil:
		return ResultDelivered, nil
	case errors.Is(err, ErrSessionClosed):
		return ResultClosed, err
	case errors.Is(err, ErrSendBufferFull):
		return ResultBufferFull, err
	default:
		return ResultFailed, err
	}
}
