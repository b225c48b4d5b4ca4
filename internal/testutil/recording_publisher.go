package testutil

import (
	"context"
	"sync"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/notification"
)

// RecordingPublisher captures published events so tests can assert on them.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

type recordedEvent struct {
	EventType string
	Payload   interface{}
}

func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{events: make([]recordedEvent, 0)}
}

// FailWith makes every subsequent Publish return err. Tests use it to
// verify emission failures never surface to callers.
func (p *RecordingPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *RecordingPublisher) Publish(_ context.Context, eventType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, recordedEvent{EventType: eventType, Payload: payload})
	return nil
}

// EventTypes returns the types of all captured events in publish order.
func (p *RecordingPublisher) EventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType)
	}
	return out
}

// CountByType returns how many events of the given type were published.
func (p *RecordingPublisher) CountByType(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, e := range p.events {
		if e.EventType == eventType {
			count++
		}
	}
	return count
}

var _ notification.Publisher = (*RecordingPublisher)(nil)
