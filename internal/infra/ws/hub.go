// Package ws implements the real-time notification hub over WebSocket.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"bastion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event is the frame pushed to clients.
type Event struct {
	EventName string `json:"eventName"`
	Message   any    `json:"message"`
}

// connection wraps one socket with its write lock. gorilla/websocket
// allows only one concurrent writer per connection.
type connection struct {
	conn       *websocket.Conn
	writeMutex sync.Mutex
}

func (c *connection) send(data []byte) error {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub tracks open connections per user. A user may hold several
// connections (multiple tabs or devices); events go to all of them.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]map[*connection]struct{}
	logger      *slog.Logger
}

// NewHub is the constructor for Hub. It returns the concrete type so the
// delivery layer can register connections; use cases see it as a Notifier.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]map[*connection]struct{}),
		logger:      logger,
	}
}

// NewNotifier exposes the hub as the domain Notifier interface for Fx.
func NewNotifier(hub *Hub) service.Notifier {
	return hub
}

// Add registers a connection for a user and returns a remove function
// the handler defers until the socket closes.
func (h *Hub) Add(userID uuid.UUID, conn *websocket.Conn) func() {
	c := &connection{conn: conn}

	h.mu.Lock()
	if h.connections[userID] == nil {
		h.connections[userID] = make(map[*connection]struct{})
	}
	h.connections[userID][c] = struct{}{}
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		if conns, ok := h.connections[userID]; ok {
			delete(conns, c)
			if len(conns) == 0 {
				delete(h.connections, userID)
			}
		}
		h.mu.Unlock()
	}
}

// PushToUser sends an event to every open connection of one user.
func (h *Hub) PushToUser(userID uuid.UUID, eventName string, message any) {
	data, err := json.Marshal(Event{EventName: eventName, Message: message})
	if err != nil {
		h.logger.Error("Failed to marshal ws event", slog.String("event", eventName), slog.Any("error", err))

		return
	}

	h.mu.RLock()
	targets := make([]*connection, 0, len(h.connections[userID]))
	for c := range h.connections[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(data); err != nil {
			h.logger.Debug("Failed to push ws event", slog.String("event", eventName), slog.Any("error", err))
		}
	}
}

// PushToAll broadcasts an event to every connected client.
func (h *Hub) PushToAll(eventName string, message any) {
	data, err := json.Marshal(Event{EventName: eventName, Message: message})
	if err != nil {
		h.logger.Error("Failed to marshal ws event", slog.String("event", eventName), slog.Any("error", err))

		return
	}

	h.mu.RLock()
	targets := make([]*connection, 0)
	for _, conns := range h.connections {
		for c := range conns {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(data); err != nil {
			h.logger.Debug("Failed to broadcast ws event", slog.String("event", eventName), slog.Any("error", err))
		}
	}
}
