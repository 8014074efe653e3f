package hub

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Event types pushed to session subscribers.
const (
	EventMessage = "message"
	EventEnded   = "ended"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client is the channel an SSE handler listens to.
type Client chan []byte

// NewClient returns a client buffering up to size events.
func NewClient(size int) Client {
	return make(Client, size)
}

// Hub fans events out to the clients of each session.
type Hub struct {
	sessions map[uuid.UUID]map[Client]bool
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewHub creates a new Hub. A nil logger uses slog.Default().
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		sessions: make(map[uuid.UUID]map[Client]bool),
		logger:   logger,
	}
}

// Subscribe adds a client to a session.
func (h *Hub) Subscribe(sessionID uuid.UUID, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[sessionID]; !ok {
		h.sessions[sessionID] = make(map[Client]bool)
	}
	h.sessions[sessionID][client] = true
}

// Unsubscribe removes a client from a session and closes its channel.
func (h *Hub) Unsubscribe(sessionID uuid.UUID, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.sessions[sessionID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.sessions, sessionID)
			}
		}
	}
}

// Close disconnects every client of a session.
func (h *Hub) Close(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.sessions[sessionID] {
		close(client)
	}
	delete(h.sessions, sessionID)
}

// Subscribers returns how many clients listen to a session.
func (h *Hub) Subscribers(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

// Broadcast sends an event to all clients of a session.
func (h *Hub) Broadcast(sessionID uuid.UUID, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	messageBytes, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal hub event", "type", event.Type, "error", err)
		return
	}

	for client := range clients {
		// A full client buffer drops the event instead of blocking the hub.
		select {
		case client <- messageBytes:
		default:
			h.logger.Warn("dropping event for slow subscriber", "session", sessionID.String(), "type", event.Type)
		}
	}
}
