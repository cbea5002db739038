// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Tables that emit change events.
const (
	TableQuestions = "questions"
	TableResponses = "responses"
)

// Event types.
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// Event describes one mutation of a table.
type Event struct {
	Table string `json:"table"`
	Event string `json:"event"`
}

// Hub fans table change events out to in-process subscribers and
// connected websocket clients. Mutating handlers call Broadcast after a
// successful write; consumers hold a Subscription with an explicit
// Unsubscribe lifecycle.
type Hub struct {
	mu      sync.Mutex
	subs    map[chan Event]struct{}
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs:    make(map[chan Event]struct{}),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Subscription is a live feed of change events. Release it with
// Unsubscribe when the consumer goes away.
type Subscription struct {
	C   <-chan Event
	hub *Hub
	ch  chan Event
}

// Subscribe registers an in-process consumer. The channel is buffered;
// a consumer that falls behind drops events rather than blocking
// broadcasters (the contract is eventually consistent, not lossless).
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return &Subscription{C: ch, hub: h, ch: ch}
}

// Unsubscribe removes the consumer and closes its channel.
func (s *Subscription) Unsubscribe() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	if _, ok := s.hub.subs[s.ch]; ok {
		delete(s.hub.subs, s.ch)
		close(s.ch)
	}
}

// Broadcast delivers an event to every subscriber and websocket client.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber buffer full, drop
		}
	}

	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			slog.Error("websocket write failed", "error", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS handles GET /ws, upgrading the connection and streaming change
// events until the client disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	slog.Info("websocket client connected", "clients", count)

	// Drain the read side so pings and close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				conn.Close()
				slog.Info("websocket client disconnected")
				return
			}
		}
	}()
}
