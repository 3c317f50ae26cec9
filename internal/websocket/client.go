// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package websocket

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024 // 512 KB
	sendBufferSize = 256
)

var (
	// ErrSessionClosed is returned when sending to a session that has left.
	ErrSessionClosed = errors.New("websocket session closed")

	// ErrSendBufferFull is returned when a session is not draining its queue.
	ErrSendBufferFull = errors.New("websocket send buffer full")
)

// clientIDCounter generates unique, monotonically increasing IDs for clients.
var clientIDCounter atomic.Uint64

// Client is one connected push session. Outbound frames are queued on a
// buffered channel and written by a dedicated goroutine, so a slow peer never
// blocks a broadcast.
type Client struct {
	id         uint64
	hub        *Hub
	conn       *websocket.Conn
	remoteAddr string

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

// NewClient creates a new Client with a unique ID. The connection may be nil
// in tests that never call Start.
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		id:         clientIDCounter.Add(1),
		hub:        hub,
		conn:       conn,
		remoteAddr: remoteAddr,
		send:       make(chan []byte, sendBufferSize),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() uint64 {
	return c.id
}

// RemoteAddr returns the peer address recorded at upgrade time.
func (c *Client) RemoteAddr() string {
	return c.remoteAddr
}

// Send queues a serialized command without blocking.
func (c *Client) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrSessionClosed
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close stops accepting frames and tells the write goroutine to send a close
// frame. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// readPump drains inbound frames until the peer goes away. Clients never send
// commands; reading is needed to process control frames and detect close.
func (c *Client) readPump() {
	defer func() {
		c.hub.Leave(c)
		_ = c.conn.Close() // best-effort cleanup
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Uint64("client_id", c.id).Msg("failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				metrics.RecordWSError("unexpected_close")
				logging.Warn().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close error")
			}
			return
		}
	}
}

// writePump pumps queued frames to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // best-effort cleanup
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Error().Err(err).Uint64("client_id", c.id).Msg("failed to set write deadline")
				return
			}

			if !ok {
				// The hub closed the session
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				metrics.RecordWSError("write")
				logging.Debug().Err(err).Uint64("client_id", c.id).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start begins reading and writing for the client
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
