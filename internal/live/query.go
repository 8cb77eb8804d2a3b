// Package live provides queries that re-deliver a full snapshot every time the
// underlying collection changes.
package live

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/metrics"
)

// Fetch loads the current snapshot of a query
type Fetch[T any] func(ctx context.Context) (T, error)

// Query is a re-runnable read bound to one or more change topics
type Query[T any] struct {
	name   string
	bus    event.Bus
	fetch  Fetch[T]
	topics []event.Type
}

// NewQuery binds fetch to the given topics on bus
func NewQuery[T any](bus event.Bus, name string, fetch Fetch[T], topics ...event.Type) *Query[T] {
	return &Query[T]{
		name:   name,
		bus:    bus,
		fetch:  fetch,
		topics: topics,
	}
}

// Name returns the query label used in logs and metrics
func (q *Query[T]) Name() string {
	return q.name
}

// Observe starts a subscription. The first snapshot is delivered immediately,
// then one per change until ctx is cancelled or Close is called.
func (q *Query[T]) Observe(ctx context.Context) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan domain.Result[T])
	sub := &Subscription[T]{
		ID:     uuid.New().String(),
		C:      out,
		out:    out,
		signal: make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
		name:   q.name,
	}

	// Subscribe before the first fetch so a change racing with it is not lost.
	for _, topic := range q.topics {
		sub.unsubs = append(sub.unsubs, q.bus.Subscribe(topic, sub.notify))
	}

	metrics.LiveSubscriptionsActive.WithLabelValues(q.name).Inc()
	slog.Debug(LogMsgSubscriptionOpened, "query", q.name, "subscription_id", sub.ID)

	go sub.run(ctx, q.fetch)
	return sub
}

// Subscription is one observer of a Query
type Subscription[T any] struct {
	ID string
	// C receives snapshots. It is closed once the subscription has stopped.
	C <-chan domain.Result[T]

	out       chan domain.Result[T]
	signal    chan struct{}
	cancel    context.CancelFunc
	unsubs    []func()
	done      chan struct{}
	closeOnce sync.Once
	name      string
}

// notify coalesces change notifications into a single pending refetch
func (s *Subscription[T]) notify(_ context.Context, _ event.Event) error {
	select {
	case s.signal <- struct{}{}:
	default:
	}
	return nil
}

func (s *Subscription[T]) run(ctx context.Context, fetch Fetch[T]) {
	defer close(s.done)
	defer close(s.out)
	defer s.release()
	defer metrics.LiveSubscriptionsActive.WithLabelValues(s.name).Dec()

	for {
		snapshot := load(ctx, fetch)

		// Never deliver once the subscription is being torn down.
		if ctx.Err() != nil {
			return
		}
		select {
		case s.out <- snapshot:
		case <-ctx.Done():
			return
		}

		select {
		case <-s.signal:
		case <-ctx.Done():
			return
		}
	}
}

func load[T any](ctx context.Context, fetch Fetch[T]) domain.Result[T] {
	value, err := fetch(ctx)
	if err != nil {
		return domain.Failure[T](err)
	}
	return domain.Success(value)
}

func (s *Subscription[T]) release() {
	for _, unsub := range s.unsubs {
		unsub()
	}
}

// Close stops the subscription and waits for its goroutine to exit. No
// snapshot is sent on C after Close returns. Close is safe to call repeatedly.
func (s *Subscription[T]) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
		slog.Debug(LogMsgSubscriptionClosed, "query", s.name, "subscription_id", s.ID)
	})
}

// Done is closed when the subscription has stopped, whether by Close or by
// cancellation of the context passed to Observe.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}
