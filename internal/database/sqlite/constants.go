package sqlite

// Operation labels used in errors and metrics
const (
	OpUpsertFavourite    = "upsert favourite"
	OpGetFavourite       = "get favourite"
	OpFavouriteExists    = "check favourite"
	OpListFavourites     = "list favourites"
	OpDeleteFavourite    = "delete favourite"
	OpClearFavourites    = "clear favourites"
	OpUpsertHistory      = "upsert history"
	OpGetHistory         = "get history"
	OpListHistory        = "list history"
	OpDeleteHistory      = "delete history"
	OpClearHistory       = "clear history"
	OpInsertItem         = "insert shopping item"
	OpInsertItems        = "insert shopping items"
	OpGetItem            = "get shopping item"
	OpUpdateItem         = "update shopping item"
	OpDeleteItem         = "delete shopping item"
	OpDeleteCheckedItems = "delete checked shopping items"
	OpClearItems         = "clear shopping items"
	OpListItems          = "list shopping items"
	OpGetPreferences     = "get preferences"
	OpSetPreference      = "set preference"
)

// Log messages
const (
	LogMsgChangeHandlerFailed = "Change event handler failed"
	LogMsgRollbackFailed      = "Failed to rollback transaction"
)
