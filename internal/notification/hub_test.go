package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/config"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)
	return NewHub(log)
}

func TestHubDeliversToSubscribers(t *testing.T) {
	hub := newTestHub(t)

	id, events := hub.Subscribe()
	defer hub.Unsubscribe(id)

	payload := map[string]string{"factura_id": "1"}
	require.NoError(t, hub.Publish(context.Background(), EventInvoiceCreated, payload))

	select {
	case event := <-events:
		assert.Equal(t, EventInvoiceCreated, event.Type)
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.Timestamp.IsZero())

		var got map[string]string
		require.NoError(t, json.Unmarshal(event.Payload, &got))
		assert.Equal(t, payload, got)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestHubFansOut(t *testing.T) {
	hub := newTestHub(t)

	id1, events1 := hub.Subscribe()
	id2, events2 := hub.Subscribe()
	defer hub.Unsubscribe(id1)
	defer hub.Unsubscribe(id2)

	require.NoError(t, hub.Publish(context.Background(), EventPaymentReceived, nil))

	for _, events := range []<-chan Event{events1, events2} {
		select {
		case event := <-events:
			assert.Equal(t, EventPaymentReceived, event.Type)
		case <-time.After(time.Second):
			t.Fatal("event not delivered to all subscribers")
		}
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	hub := newTestHub(t)

	id, events := hub.Subscribe()
	defer hub.Unsubscribe(id)

	// Saturate the subscriber buffer and keep publishing; Publish must
	// never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			_ = hub.Publish(context.Background(), EventSystemAlert, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	delivered := 0
	for {
		select {
		case <-events:
			delivered++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, delivered)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := newTestHub(t)

	id, events := hub.Subscribe()
	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Unsubscribe(id)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-events
	assert.False(t, open)

	// Publishing with no subscribers is a no-op.
	assert.NoError(t, hub.Publish(context.Background(), EventSystemAlert, nil))
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().Publish(context.Background(), EventSystemAlert, nil))
}
