package notification

import (
	"context"
	"encoding/json"
	"time"
)

// Event types emitted by the billing core.
const (
	EventInvoiceCreated  = "invoice_created"
	EventPaymentReceived = "payment_received"
	EventSystemAlert     = "system_alert"
)

// Event is the envelope delivered to subscribers of the real-time channel.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Publisher is the fire-and-forget capability the billing core depends on.
// Implementations must never block on slow consumers; callers log and
// swallow any returned error, so delivery failures cannot fail a request.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }
