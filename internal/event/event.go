package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Change topics, one per stored collection
const (
	FavouritesChanged   Type = "favourites.changed"
	HistoryChanged      Type = "history.changed"
	ShoppingListChanged Type = "shopping_list.changed"
	PreferencesChanged  Type = "preferences.changed"
	SessionChanged      Type = "session.changed"
)

// ChangePayloadV1 describes a mutation of a stored collection
type ChangePayloadV1 struct {
	Operation string `json:"operation"`
	Affected  int64  `json:"affected"`
	Timestamp int64  `json:"timestamp"`
}

// SessionPayloadV1 is the typed payload for session changes
type SessionPayloadV1 struct {
	UID       string `json:"uid,omitempty"`
	SignedIn  bool   `json:"signed_in"`
	Timestamp int64  `json:"timestamp"`
}

// NewChangeEvent creates a collection change event
func NewChangeEvent(topic Type, operation string, affected int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    topic,
		Payload: ChangePayloadV1{
			Operation: operation,
			Affected:  affected,
			Timestamp: time.Now().UnixMilli(),
		},
	}
}

// NewSessionEvent creates a session change event
func NewSessionEvent(uid string, signedIn bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionChanged,
		Payload: SessionPayloadV1{
			UID:       uid,
			SignedIn:  signedIn,
			Timestamp: time.Now().UnixMilli(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	// Subscribe registers handler for eventType. Calling the returned function
	// removes the handler from subsequent publishes.
	Subscribe(eventType Type, handler Handler) (unsubscribe func())
}

type subscription struct {
	id      uint64
	handler Handler
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]subscription
	nextID   uint64
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]subscription),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type]))
	copy(subs, b.handlers[event.Type])
	b.mu.RUnlock()

	var errs []error
	for _, sub := range subs {
		if err := sub.handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(eventType, id) })
	}
}

func (b *MemoryBus) remove(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, sub := range subs {
		if sub.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// SubscriberCount returns the number of handlers registered for eventType
func (b *MemoryBus) SubscriberCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
