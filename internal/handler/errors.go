package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgInvalidDateParam  = "Invalid date, expected YYYY-MM-DD"

	// Assistant error messages
	ErrMsgEmptyMessage = "Message must not be empty"
)

// Success messages for API responses
const (
	MsgMenuItemDeleted = "Menu item deleted"
	MsgRecipeDeleted   = "Recipe deleted"
	MsgEventDeleted    = "Event deleted"
)

// Action names used in logs and error responses
const (
	ActionCreateMenuItem = "Create menu item"
	ActionUpdateMenuItem = "Update menu item"
	ActionDeleteMenuItem = "Delete menu item"
	ActionGetMenuItem    = "Get menu item"
	ActionListMenuItems  = "List menu items"

	ActionCreateRecipe = "Create recipe"
	ActionUpdateRecipe = "Update recipe"
	ActionDeleteRecipe = "Delete recipe"
	ActionGetRecipe    = "Get recipe"
	ActionListRecipes  = "List recipes"

	ActionCreateEvent   = "Create event"
	ActionUpdateEvent   = "Update event"
	ActionUpdateStatus  = "Update event status"
	ActionDeleteEvent   = "Delete event"
	ActionGetEvent      = "Get event"
	ActionListEvents    = "List events"
	ActionShoppingList  = "Shopping list"
	ActionAdHocShopping = "Ad-hoc shopping list"
	ActionAssistant     = "Assistant"
)

// Route parameters and query keys
const (
	ParamID         = "id"
	QueryDate       = "date"
	QueryMenuItemID = "menu_item_id"
)
