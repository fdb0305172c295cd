// Package notification fans out kitchen events to connected WebSocket
// clients. Delivery is best-effort: a slow or dead client is dropped
// without affecting the others, and broadcasting never fails the caller.
package notification

import (
	"sync"

	"go.uber.org/zap"
)

// Subscriber receives broadcast payloads. *Client is the production
// implementation; tests substitute fakes.
type Subscriber interface {
	// Send queues a payload for delivery. It returns an error when the
	// subscriber can no longer accept messages.
	Send(payload []byte) error
	// Close releases the subscriber's resources. Must be safe to call
	// more than once.
	Close() error
}

// Hub tracks connected subscribers and broadcasts payloads to all of them.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[Subscriber]struct{}
	logger      *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subscribers: make(map[Subscriber]struct{}),
		logger:      logger,
	}
}

// Register adds a subscriber. Registering the same subscriber twice is a no-op.
func (h *Hub) Register(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[s] = struct{}{}
	h.logger.Debug("subscriber registered", zap.Int("total", len(h.subscribers)))
}

// Unregister removes a subscriber and closes it. Unregistering a subscriber
// that was never registered, or one already removed, is a no-op.
func (h *Hub) Unregister(s Subscriber) {
	h.mu.Lock()
	_, present := h.subscribers[s]
	delete(h.subscribers, s)
	remaining := len(h.subscribers)
	h.mu.Unlock()

	if present {
		_ = s.Close()
		h.logger.Debug("subscriber unregistered", zap.Int("total", remaining))
	}
}

// Broadcast sends the payload to every registered subscriber. Subscribers
// that fail to accept the payload are dropped; the broadcast itself never
// returns an error.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	targets := make([]Subscriber, 0, len(h.subscribers))
	for s := range h.subscribers {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		if err := s.Send(payload); err != nil {
			h.logger.Warn("dropping unreachable subscriber", zap.Error(err))
			h.Unregister(s)
		}
	}
}

// Len returns the number of connected subscribers
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Shutdown closes every subscriber and empties the hub
func (h *Hub) Shutdown() {
	h.mu.Lock()
	subscribers := h.subscribers
	h.subscribers = make(map[Subscriber]struct{})
	h.mu.Unlock()

	for s := range subscribers {
		_ = s.Close()
	}
	h.logger.Info("notification hub shut down", zap.Int("closed", len(subscribers)))
}
