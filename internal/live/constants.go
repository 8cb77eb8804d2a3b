package live

// Log messages
const (
	LogMsgSubscriptionOpened = "Live subscription opened"
	LogMsgSubscriptionClosed = "Live subscription closed"
)
