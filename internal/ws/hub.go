// Package ws implements the real-time notification channel: a WebSocket hub
// that fans successful-mutation events out to every connected client.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/taskboard-io/taskboard-api/internal/events"
)

// Hub maintains the set of connected clients and broadcasts events to them.
// The client set is owned exclusively by the Run loop, so membership changes
// and broadcasts never race.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a new Hub. Call Run before serving connections.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Hub")
	}

	return &Hub{
		logger: log.With(slog.String("component", "ws_hub")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Run owns the client set until ctx is canceled. Connect, disconnect, and
// broadcast requests are serialized through the hub's channels.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("websocket client connected", "clients", len(h.clients))

			// Acknowledge the new client immediately; nobody else
			// receives this event.
			if msg, err := json.Marshal(events.NewConnected()); err == nil {
				client.enqueue(msg)
			}

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("websocket client disconnected", "clients", len(h.clients))
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Client is not keeping up; drop it rather
					// than queue or block the broadcast.
					delete(h.clients, client)
					close(client.send)
				}
			}

		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// Publish implements events.Publisher. The event is serialized once and
// handed to the broadcast loop; if the hub is saturated the event is dropped
// and logged, never blocking the caller.
func (h *Hub) Publish(event events.Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event",
			"event_id", event.ID.String(),
			"event_type", string(event.Type),
			"error", err)
		return
	}

	select {
	case h.broadcast <- msg:
		h.logger.Debug("event queued for broadcast",
			"event_id", event.ID.String(),
			"event_type", string(event.Type))
	default:
		h.logger.Warn("broadcast queue full, dropping event",
			"event_id", event.ID.String(),
			"event_type", string(event.Type))
	}
}

// ServeWS upgrades an HTTP request to a WebSocket connection and registers
// the client with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			"remote_addr", r.RemoteAddr,
			"error", err)
		return
	}

	client := newClient(h, conn)
	h.register <- client

	go client.writePump()
	go client.readPump()
}
