package recipe

// DefaultRandomNumber is how many recommendations RandomRecipes asks for
const DefaultRandomNumber = 10

// MsgNoRecipesFound is the session error shown for an empty result page
const MsgNoRecipesFound = "No recipes found"

// Log messages
const (
	LogMsgSearchSkipped   = "Search skipped, query is blank"
	LogMsgSearchCompleted = "Recipe search completed"
	LogMsgSearchFailed    = "Recipe search failed"
	LogMsgDetailsFailed   = "Failed to load recipe details"
	LogMsgRandomFailed    = "Failed to load recommended recipes"
)
