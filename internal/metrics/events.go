package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// EventMetricsCollector subscribes to change events and records metrics
type EventMetricsCollector struct {
	unsubs []func()
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every change topic
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.FavouritesChanged,
		event.HistoryChanged,
		event.ShoppingListChanged,
		event.PreferencesChanged,
		event.SessionChanged,
	}

	for _, eventType := range eventTypes {
		e.unsubs = append(e.unsubs, bus.Subscribe(eventType, e.HandleEvent))
	}
}

// Unregister removes all subscriptions made by Register
func (e *EventMetricsCollector) Unregister() {
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	if evt.Type == event.SessionChanged {
		payload, err := event.DecodePayload[event.SessionPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		SessionChanges.WithLabelValues(strconv.FormatBool(payload.SignedIn)).Inc()
		log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
		return nil
	}

	payload, err := event.DecodePayload[event.ChangePayloadV1](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}
	StoreMutations.WithLabelValues(string(evt.Type), payload.Operation).Inc()

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
