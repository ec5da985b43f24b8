package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-io/taskboard-api/internal/events"
)

// startHub runs a hub behind an httptest server and returns the dial URL.
func startHub(t *testing.T) (*Hub, string) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(log)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestHubSendsConnectedAckOnConnect(t *testing.T) {
	_, url := startHub(t)

	conn := dial(t, url)
	ack := readEvent(t, conn)

	assert.Equal(t, "connected", ack["type"])
	assert.Equal(t, "WebSocket connection established", ack["message"])
}

func TestHubBroadcastsToConnectedClients(t *testing.T) {
	hub, url := startHub(t)

	first := dial(t, url)
	second := dial(t, url)

	// Drain the acks so the next frame on each connection is the broadcast.
	readEvent(t, first)
	readEvent(t, second)

	hub.Publish(events.NewTaskCreated("Write report"))

	for _, conn := range []*websocket.Conn{first, second} {
		got := readEvent(t, conn)
		assert.Equal(t, "create", got["type"])
		assert.Equal(t, "New task created", got["message"])
		assert.Equal(t, map[string]any{"task_title": "Write report"}, got["data"])
	}
}

func TestHubSurvivesClientDisconnect(t *testing.T) {
	hub, url := startHub(t)

	leaver := dial(t, url)
	stayer := dial(t, url)
	readEvent(t, leaver)
	readEvent(t, stayer)

	require.NoError(t, leaver.Close())

	// Give the hub's loop a moment to process the disconnect.
	time.Sleep(100 * time.Millisecond)

	hub.Publish(events.NewTaskDeleted(7))

	got := readEvent(t, stayer)
	assert.Equal(t, "delete", got["type"])
	assert.Equal(t, map[string]any{"task_id": float64(7)}, got["data"])
}
