package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// writer sends SSE frames and flushes after each one
type writer struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newWriter(w http.ResponseWriter) (*writer, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, LogMsgStreamUnsupported, http.StatusInternalServerError)
		return nil, false
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &writer{w: w, flusher: flusher}, true
}

// send writes one event. It returns false once the client is gone.
func (sw *writer) send(evt Event) bool {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		slog.Error(LogMsgWriteError, "event_type", evt.Type, "error", err)
		return true
	}
	if _, err := sw.w.Write(msg); err != nil {
		slog.Debug(LogMsgWriteError, "event_type", evt.Type, "error", err)
		return false
	}
	sw.flusher.Flush()
	return true
}

func (sw *writer) keepalive() bool {
	return sw.send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().UnixMilli()})
}

// Handler streams change notices from hub. The optional types query
// parameter restricts the stream to the listed topics.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw, ok := newWriter(w)
		if !ok {
			return
		}

		var eventTypes []string
		if filterParam := r.URL.Query().Get(TypesQueryParam); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		client := hub.Register(eventTypes)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		if !sw.send(NewEvent(EventTypeConnected, map[string]interface{}{
			"client_id": client.ID,
			"filters":   eventTypes,
		})) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					return
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
