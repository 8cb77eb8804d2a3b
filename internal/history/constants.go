package history

// DefaultRecentLimit is how many entries Recent returns
const DefaultRecentLimit = 20

// QueryRecent names the recent-history live query
const QueryRecent = "history.recent"

// Log messages
const (
	LogMsgHistoryRecorded = "Recipe view recorded"
	LogMsgHistoryDeleted  = "History entry deleted"
	LogMsgHistoryCleared  = "History cleared"
)
