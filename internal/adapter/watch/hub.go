// Package watch streams compact world frames to websocket watchers on a
// listener separate from the API. The action and advance paths publish
// into the hub; the hub never makes them wait.
package watch

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

const clientBuffer = 8

type message struct {
	Type       string `json:"type"`
	WorldID    string `json:"world_id"`
	Frame      any    `json:"frame"`
	ServerTime int64  `json:"server_time"`
}

type client struct {
	send chan []byte
}

// Hub fans frames out to connected watchers and remembers the latest
// frame per world so new watchers and the /state fallback see the
// current world without waiting for the next action.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  map[string][]byte
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		latest:  make(map[string][]byte),
	}
}

// Publish marshals the frame once and hands it to every watcher. A
// watcher whose buffer is full loses this frame; frames supersede each
// other, so skipping one is safe.
func (h *Hub) Publish(worldID string, frame any) {
	raw, err := json.Marshal(message{
		Type:       "state",
		WorldID:    worldID,
		Frame:      frame,
		ServerTime: time.Now().UnixMilli(),
	})
	if err != nil {
		log.Printf("watch: drop frame for %s: %v", worldID, err)
		return
	}
	h.mu.Lock()
	h.latest[worldID] = raw
	for c := range h.clients {
		select {
		case c.send <- raw:
		default:
		}
	}
	h.mu.Unlock()
}

// Latest returns the last published message for a world.
func (h *Hub) Latest(worldID string) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	raw, ok := h.latest[worldID]
	return raw, ok
}

// LatestAll returns the last published message for every world.
func (h *Hub) LatestAll() map[string]json.RawMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]json.RawMessage, len(h.latest))
	for id, raw := range h.latest {
		out[id] = raw
	}
	return out
}

// register adds a watcher and queues the latest frame of every world so
// it starts with a current picture.
func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	for _, raw := range h.latest {
		select {
		case c.send <- raw:
		default:
		}
	}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}
