package realtime

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub owns the connection registry and room membership. Both tables are
// append/remove-only; all durable state lives in the store.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}

	bus    Bus
	logger *logrus.Logger
}

func NewHub(bus Bus, logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
		bus:     bus,
		logger:  logger,
	}
}

// Run consumes the bus and fans events out to joined connections. It returns
// when the context is cancelled or the subscription drops.
func (h *Hub) Run(ctx context.Context) error {
	events, err := h.bus.Subscribe(ctx, chatPattern)
	if err != nil {
		return err
	}
	for ev := range events {
		h.Dispatch(ev)
	}
	return ctx.Err()
}

// Dispatch routes one bus event to the matching connections.
func (h *Hub) Dispatch(ev Event) {
	if ev.Channel == GlobalChannel {
		h.broadcastAll(ev.Payload)
		return
	}
	if room, ok := strings.CutPrefix(ev.Channel, "chat:room:"); ok {
		h.broadcastRoom(room, ev.Payload)
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	if h.logger != nil {
		h.logger.WithField("user_id", c.UserID).Info("user connected")
	}
}

// Unregister removes the connection from the registry and from every room it
// joined.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
	if h.logger != nil {
		h.logger.WithField("user_id", c.UserID).Info("user disconnected")
	}
}

// Join adds the connection to a room. A connection may join any number of
// rooms; there is no leave operation.
func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	h.mu.Unlock()
	if h.logger != nil {
		h.logger.WithFields(logrus.Fields{"user_id": c.UserID, "room": room}).Info("joined room")
	}
}

// InRoom reports room membership, used by tests and diagnostics.
func (h *Hub) InRoom(room string, c *Client) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[room][c]
	return ok
}

func (h *Hub) broadcastRoom(room string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		c.deliver(payload)
	}
}

func (h *Hub) broadcastAll(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.deliver(payload)
	}
}
