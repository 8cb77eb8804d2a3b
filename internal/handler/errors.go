package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid id"
	ErrMsgInvalidNumber         = "Invalid %s parameter"

	// Recipe errors
	ErrMsgSearchFailed    = "Failed to search recipes"
	ErrMsgGetRecipeFailed = "Failed to load recipe"
	ErrMsgGetRandomFailed = "Failed to load recommended recipes"

	// Record errors
	ErrMsgGetFavouritesFailed    = "Failed to load favourites"
	ErrMsgUpdateFavouritesFailed = "Failed to update favourites"
	ErrMsgGetHistoryFailed       = "Failed to load history"
	ErrMsgUpdateHistoryFailed    = "Failed to update history"
	ErrMsgGetShoppingListFailed  = "Failed to load shopping list"
	ErrMsgUpdateShoppingFailed   = "Failed to update shopping list"

	// Settings errors
	ErrMsgGetSettingsFailed    = "Failed to load settings"
	ErrMsgUpdateSettingsFailed = "Failed to update settings"
)

// Success messages for API responses
const (
	MsgFavouriteSaved    = "Favourite saved"
	MsgFavouriteRemoved  = "Favourite removed"
	MsgFavouritesCleared = "Favourites cleared"
	MsgHistoryRemoved    = "History entry removed"
	MsgHistoryCleared    = "History cleared"
	MsgItemRemoved       = "Item removed"
	MsgCheckedRemoved    = "Checked items removed"
	MsgShoppingCleared   = "Shopping list cleared"
	MsgFirstLaunchDone   = "First launch complete"
	MsgSignedOut         = "Signed out"
)

// Log messages
const (
	LogMsgHistoryRecordFailed = "Failed to record recipe view"
	LogMsgServiceError        = "Service error"
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgReadinessFailed     = "Readiness check failed"
)
