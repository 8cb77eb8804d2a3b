package bootstrap

import (
	"log/slog"

	"github.com/osse101/NutriFind_Go/internal/metrics"
	"github.com/osse101/NutriFind_Go/internal/sse"
)

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (mutations and session changes)
// - SSE subscriber (relays change notices to connected clients)
func RegisterEventHandlers(events *EventSystem) {
	events.Metrics = metrics.NewEventMetricsCollector()
	events.Metrics.Register(events.Bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	events.Subscriber = sse.NewSubscriber(events.Hub, events.Bus)
	events.Subscriber.Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)
}
