package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/NutriFind_Go/internal/event"
)

// ChangeNotice is the SSE payload for a collection or session change
type ChangeNotice struct {
	Topic     string `json:"topic"`
	Operation string `json:"operation,omitempty"`
	Affected  int64  `json:"affected,omitempty"`
	SignedIn  *bool  `json:"signed_in,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Topics lists the bus topics relayed to SSE clients
var Topics = []event.Type{
	event.FavouritesChanged,
	event.HistoryChanged,
	event.ShoppingListChanged,
	event.PreferencesChanged,
	event.SessionChanged,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub    *Hub
	bus    event.Bus
	unsubs []func()
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the relay on every topic in Topics
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(Topics))
	for _, topic := range Topics {
		s.unsubs = append(s.unsubs, s.bus.Subscribe(topic, s.handle))
		names = append(names, string(topic))
	}
	slog.Info(LogMsgSubscriberReady, "types", names)
}

// Unsubscribe removes every relay registered by Subscribe
func (s *Subscriber) Unsubscribe() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}

func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	notice := ChangeNotice{Topic: string(evt.Type)}

	if evt.Type == event.SessionChanged {
		payload, err := event.DecodePayload[event.SessionPayloadV1](evt.Payload)
		if err != nil {
			slog.Warn("Invalid session event payload", "error", err)
			return nil
		}
		signedIn := payload.SignedIn
		notice.SignedIn = &signedIn
		notice.Timestamp = payload.Timestamp
	} else {
		payload, err := event.DecodePayload[event.ChangePayloadV1](evt.Payload)
		if err != nil {
			slog.Warn("Invalid change event payload", "topic", evt.Type, "error", err)
			return nil
		}
		notice.Operation = payload.Operation
		notice.Affected = payload.Affected
		notice.Timestamp = payload.Timestamp
	}

	s.hub.Broadcast(notice.Topic, notice)
	slog.Debug(LogMsgEventBroadcast, "event_type", notice.Topic, "operation", notice.Operation)
	return nil
}
