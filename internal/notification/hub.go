package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
)

// subscriberBuffer bounds each subscriber's channel. A subscriber that
// falls this far behind starts losing events rather than blocking the
// billing path.
const subscriberBuffer = 16

// Hub fans published events out to SSE subscribers. It implements
// Publisher for the billing services and feeds the streaming endpoint.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
	log         *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]chan Event),
		log:         log,
	}
}

// Subscribe registers a new subscriber and returns its id and channel.
func (h *Hub) Subscribe() (string, <-chan Event) {
	id := ulid.Make().String()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	h.log.Debugw("sse subscriber connected", "subscriber_id", id)
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	ch, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()

	if ok {
		close(ch)
		h.log.Debugw("sse subscriber disconnected", "subscriber_id", id)
	}
}

// Publish marshals the payload and delivers the event to every subscriber
// without blocking. Events to saturated subscribers are dropped.
func (h *Hub) Publish(_ context.Context, eventType string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode notification payload").
			Mark(ierr.ErrInternal)
	}

	event := Event{
		ID:        ulid.Make().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   body,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.log.Warnw("dropping event for slow subscriber",
				"subscriber_id", id,
				"event_type", eventType,
			)
		}
	}
	return nil
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
