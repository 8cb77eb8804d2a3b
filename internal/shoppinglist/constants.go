package shoppinglist

// Live query names
const (
	QueryAll       = "shopping_list.all"
	QueryUnchecked = "shopping_list.unchecked"
)

// Log messages
const (
	LogMsgItemAdded        = "Shopping list item added"
	LogMsgIngredientsAdded = "Recipe ingredients added to shopping list"
	LogMsgItemUpdated      = "Shopping list item updated"
	LogMsgItemDeleted      = "Shopping list item deleted"
	LogMsgCheckedRemoved   = "Checked shopping list items removed"
	LogMsgListCleared      = "Shopping list cleared"
)
