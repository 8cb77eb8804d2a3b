package bootstrap

import (
	"log/slog"

	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/metrics"
	"github.com/osse101/NutriFind_Go/internal/sse"
)

// EventSystem holds the bus and everything subscribed to it at startup
type EventSystem struct {
	Bus        *event.MemoryBus
	Hub        *sse.Hub
	Subscriber *sse.Subscriber
	Metrics    *metrics.EventMetricsCollector
}

// InitializeEventSystem creates the event bus and the SSE hub. The hub is
// started; handlers are registered by RegisterEventHandlers.
func InitializeEventSystem() *EventSystem {
	hub := sse.NewHub()
	hub.Start()

	slog.Info(LogMsgEventSystemInitialized)
	return &EventSystem{
		Bus: event.NewMemoryBus(),
		Hub: hub,
	}
}
