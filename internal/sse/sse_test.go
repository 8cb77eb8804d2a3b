package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/live"
)

// frame is one parsed SSE message
type frame struct {
	Type  string
	Event Event
	Raw   json.RawMessage
}

type frameReader struct {
	t       *testing.T
	scanner *bufio.Scanner
	frames  chan frame
}

func openStream(t *testing.T, url string) *frameReader {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	fr := &frameReader{t: t, scanner: bufio.NewScanner(resp.Body), frames: make(chan frame, 16)}
	go fr.read()
	return fr
}

func (fr *frameReader) read() {
	defer close(fr.frames)
	var current frame
	for fr.scanner.Scan() {
		line := fr.scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.Type = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data := strings.TrimPrefix(line, "data: ")
			var wire struct {
				Event
				Payload json.RawMessage `json:"payload"`
			}
			if err := json.Unmarshal([]byte(data), &wire); err == nil {
				current.Event = wire.Event
				current.Raw = wire.Payload
			}
		case line == "":
			if current.Type != "" {
				fr.frames <- current
			}
			current = frame{}
		}
	}
}

func (fr *frameReader) next() frame {
	fr.t.Helper()
	select {
	case f, ok := <-fr.frames:
		require.True(fr.t, ok, "stream closed")
		return f
	case <-time.After(2 * time.Second):
		fr.t.Fatal("timed out waiting for SSE frame")
	}
	return frame{}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "favourites.changed", Timestamp: 1, Payload: map[string]int{"n": 1}})
	require.NoError(t, err)
	assert.Equal(t,
		"id: abc\nevent: favourites.changed\ndata: {\"id\":\"abc\",\"type\":\"favourites.changed\",\"timestamp\":1,\"payload\":{\"n\":1}}\n\n",
		string(msg))

	msg, err = FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "event: keepalive\n"))
}

func TestHub_FiltersByType(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	onlyHistory := hub.Register([]string{string(event.HistoryChanged)})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(string(event.FavouritesChanged), "fav")
	hub.Broadcast(string(event.HistoryChanged), "hist")

	for _, want := range []string{"fav", "hist"} {
		select {
		case evt := <-all.EventChannel:
			assert.Equal(t, want, evt.Payload)
		case <-time.After(time.Second):
			t.Fatalf("client did not receive %s", want)
		}
	}

	select {
	case evt := <-onlyHistory.EventChannel:
		assert.Equal(t, "hist", evt.Payload)
	case <-time.After(time.Second):
		t.Fatal("filtered client did not receive history notice")
	}

	hub.Unregister(all.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	_, open := <-all.EventChannel
	assert.False(t, open)
}

func TestHandler_RelaysBusChanges(t *testing.T) {
	bus := event.NewMemoryBus()
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	relay := NewSubscriber(hub, bus)
	relay.Subscribe()
	defer relay.Unsubscribe()

	srv := httptest.NewServer(Handler(hub))
	t.Cleanup(srv.Close)

	stream := openStream(t, srv.URL+"?types="+string(event.ShoppingListChanged))
	assert.Equal(t, EventTypeConnected, stream.next().Type)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), event.NewChangeEvent(event.FavouritesChanged, event.OperationUpsert, 1)))
	require.NoError(t, bus.Publish(context.Background(), event.NewChangeEvent(event.ShoppingListChanged, event.OperationInsert, 3)))

	f := stream.next()
	assert.Equal(t, string(event.ShoppingListChanged), f.Type)
	var notice ChangeNotice
	require.NoError(t, json.Unmarshal(f.Raw, &notice))
	assert.Equal(t, event.OperationInsert, notice.Operation)
	assert.Equal(t, int64(3), notice.Affected)
}

func TestSubscriber_SessionNotice(t *testing.T) {
	bus := event.NewMemoryBus()
	hub := NewHub()
	hub.Start()
	defer hub.Stop()
	client := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	relay := NewSubscriber(hub, bus)
	relay.Subscribe()
	require.NoError(t, bus.Publish(context.Background(), event.NewSessionEvent("u1", true)))

	select {
	case evt := <-client.EventChannel:
		notice, ok := evt.Payload.(ChangeNotice)
		require.True(t, ok)
		require.NotNil(t, notice.SignedIn)
		assert.True(t, *notice.SignedIn)
	case <-time.After(time.Second):
		t.Fatal("no session notice")
	}

	relay.Unsubscribe()
	for _, topic := range Topics {
		assert.Equal(t, 0, bus.SubscriberCount(topic))
	}
}

func TestStream_SendsSnapshotsAndErrors(t *testing.T) {
	bus := event.NewMemoryBus()
	var calls atomic.Int64
	query := live.NewQuery(bus, "counter", func(context.Context) (int64, error) {
		n := calls.Add(1)
		if n == 3 {
			return 0, errors.New("boom")
		}
		return n, nil
	}, event.HistoryChanged)

	srv := httptest.NewServer(Stream("counter", func(ctx context.Context, _ *http.Request) *live.Subscription[int64] {
		return query.Observe(ctx)
	}))
	t.Cleanup(srv.Close)

	stream := openStream(t, srv.URL)

	first := stream.next()
	assert.Equal(t, EventTypeSnapshot, first.Type)
	var snap SnapshotPayload[int64]
	require.NoError(t, json.Unmarshal(first.Raw, &snap))
	assert.Equal(t, int64(1), snap.Data)
	assert.Equal(t, "counter", snap.Query)

	require.NoError(t, bus.Publish(context.Background(), event.NewChangeEvent(event.HistoryChanged, event.OperationUpsert, 1)))
	second := stream.next()
	require.NoError(t, json.Unmarshal(second.Raw, &snap))
	assert.Equal(t, int64(2), snap.Data)

	require.NoError(t, bus.Publish(context.Background(), event.NewChangeEvent(event.HistoryChanged, event.OperationUpsert, 1)))
	third := stream.next()
	assert.Equal(t, EventTypeError, third.Type)
	var failure ErrorPayload
	require.NoError(t, json.Unmarshal(third.Raw, &failure))
	assert.Equal(t, "boom", failure.Error)
}
