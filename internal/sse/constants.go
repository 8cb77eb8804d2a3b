package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE. Change notices use the bus topic as their type.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
	EventTypeSnapshot  = "snapshot"
	EventTypeError     = "error"
)

// TypesQueryParam filters the change stream to a comma separated list of topics
const TypesQueryParam = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgStreamOpened       = "Live query stream opened"
	LogMsgStreamClosed       = "Live query stream closed"
	LogMsgSubscriberReady    = "SSE subscriber registered for change topics"
	LogMsgStreamUnsupported  = "SSE not supported"
)
