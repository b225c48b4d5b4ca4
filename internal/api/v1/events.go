package v1

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/notification"
)

type EventsHandler struct {
	hub *notification.Hub
	log *logger.Logger
}

func NewEventsHandler(hub *notification.Hub, log *logger.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, log: log}
}

// @Summary Stream billing events
// @Description Server-sent events stream of invoice and payment notifications
// @Tags Events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /eventos [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	id, events := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
