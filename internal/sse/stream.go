package sse

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/NutriFind_Go/internal/live"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// ErrorPayload is sent in place of a snapshot when the query fails
type ErrorPayload struct {
	Query string `json:"query"`
	Error string `json:"error"`
}

// SnapshotPayload wraps one snapshot of a live query
type SnapshotPayload[T any] struct {
	Query string `json:"query"`
	Data  T      `json:"data"`
}

// Observe opens a live subscription scoped to one request
type Observe[T any] func(ctx context.Context, r *http.Request) *live.Subscription[T]

// Stream serves a live query as SSE. Every snapshot is sent as a snapshot
// event and every failed load as an error event, until the client leaves.
func Stream[T any](name string, observe Observe[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw, ok := newWriter(w)
		if !ok {
			return
		}

		ctx := r.Context()
		sub := observe(ctx, r)
		defer sub.Close()

		log := logger.FromContext(ctx)
		log.Debug(LogMsgStreamOpened, "query", name, "subscription_id", sub.ID)
		defer log.Debug(LogMsgStreamClosed, "query", name, "subscription_id", sub.ID)

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case res, ok := <-sub.C:
				if !ok {
					return
				}
				evt := NewEvent(EventTypeError, ErrorPayload{Query: name, Error: res.Message()})
				if value, success := res.Value(); success {
					evt = NewEvent(EventTypeSnapshot, SnapshotPayload[T]{Query: name, Data: value})
				}
				if !sw.send(evt) {
					return
				}

			case <-ticker.C:
				if !sw.keepalive() {
					return
				}
			}
		}
	}
}
