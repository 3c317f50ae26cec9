// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/rfidrelay/internal/models"
)

// setupHubServer starts a test server that registers every upgraded
// connection with hub.
func setupHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Failed to upgrade connection: %v", err)
			return
		}
		client := NewClient(hub, conn, r.RemoteAddr)
		if err := hub.Join(client); err != nil {
			_ = conn.Close()
			return
		}
		client.Start()
	}))
	t.Cleanup(server.Close)
	return server
}

// dialWebSocket establishes a WebSocket connection to the test server
func dialWebSocket(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	return string(data)
}

// waitFor polls cond until it holds or the timeout passes.
func waitFor(t *testing.T, timeout time.Duration, msg string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Errorf("%s: timeout after %v", msg, timeout)
}

func TestClient_Constants(t *testing.T) {
	if writeWait != 10*time.Second {
		t.Errorf("writeWait = %v", writeWait)
	}
	if pongWait != 60*time.Second {
		t.Errorf("pongWait = %v", pongWait)
	}
	if pingPeriod != 54*time.Second {
		t.Errorf("pingPeriod = %v", pingPeriod)
	}
	if maxMessageSize != 512*1024 {
		t.Errorf("maxMessageSize = %d", maxMessageSize)
	}
}

func TestNewClient(t *testing.T) {
	a := NewClient(nil, nil, "a")
	b := NewClient(nil, nil, "b")

	if a.ID() >= b.ID() {
		t.Errorf("IDs not increasing: %d then %d", a.ID(), b.ID())
	}
	if a.RemoteAddr() != "a" {
		t.Errorf("RemoteAddr() = %q", a.RemoteAddr())
	}
	if cap(a.send) != sendBufferSize {
		t.Errorf("send buffer = %d, want %d", cap(a.send), sendBufferSize)
	}
}

func TestClient_SendAndClose(t *testing.T) {
	c := NewClient(nil, nil, "test")

	if err := c.Send([]byte("one")); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got := string(<-c.send); got != "one" {
		t.Errorf("queued frame = %q", got)
	}

	c.Close()
	c.Close()

	if err := c.Send([]byte("two")); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Send() after Close error = %v, want ErrSessionClosed", err)
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed")
	}
}

func TestClient_SendBufferFull(t *testing.T) {
	c := NewClient(nil, nil, "test")
	for i := 0; i < sendBufferSize; i++ {
		if err := c.Send([]byte("x")); err != nil {
			t.Fatalf("Send() #%d error = %v", i, err)
		}
	}
	if err := c.Send([]byte("overflow")); !errors.Is(err, ErrSendBufferFull) {
		t.Errorf("Send() error = %v, want ErrSendBufferFull", err)
	}
}

func TestClient_Integration(t *testing.T) {
	hub := NewHub()
	server := setupHubServer(t, hub)

	first := dialWebSocket(t, server)
	second := dialWebSocket(t, server)

	for _, conn := range []*websocket.Conn{first, second} {
		if got := readFrame(t, conn); got != welcomeJSON {
			t.Fatalf("first frame = %s, want welcome", got)
		}
	}
	waitFor(t, time.Second, "both clients registered", func() bool { return hub.Count() == 2 })

	report := NewDispatcher(hub).Broadcast(context.Background(), models.NewStopExhibit("ex_desert", "00FF"))
	if report.Delivered != 2 {
		t.Errorf("Delivered = %d, want 2", report.Delivered)
	}

	want := `{"type":"STOP_EXHIBIT","exhibitId":"ex_desert","shortId":"00FF"}`
	for _, conn := range []*websocket.Conn{first, second} {
		if got := readFrame(t, conn); got != want {
			t.Errorf("frame = %s, want %s", got, want)
		}
	}

	// Closing one peer removes it from the registry.
	_ = first.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = first.Close()
	waitFor(t, 2*time.Second, "disconnected client removed", func() bool { return hub.Count() == 1 })

	report = NewDispatcher(hub).Broadcast(context.Background(), models.NewStopExhibit("ex_desert", "00FF"))
	if report.Attempted != 1 {
		t.Errorf("Attempted = %d, want 1 after disconnect", report.Attempted)
	}
	if got := readFrame(t, second); got != want {
		t.Errorf("frame = %s, want %s", got, want)
	}
}

func TestClient_ServerShutdownSendsClose(t *testing.T) {
	hub := NewHub()
	server := setupHubServer(t, hub)
	conn := dialWebSocket(t, server)
	readFrame(t, conn)
	waitFor(t, time.Second, "client registered", func() bool { return hub.Count() == 1 })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	<-done

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNoStatusReceived) {
		t.Errorf("ReadMessage() error = %v, want close frame", err)
	}
}
