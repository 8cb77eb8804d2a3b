package favourites

// Live query names
const (
	QueryAll         = "favourites.all"
	QueryIsFavourite = "favourites.is_favourite"
)

// Log messages
const (
	LogMsgFavouriteAdded   = "Favourite added"
	LogMsgFavouriteRemoved = "Favourite removed"
	LogMsgFavouriteToggled = "Favourite toggled"
	LogMsgFavouritesClear  = "Favourites cleared"
)
