package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgMenuItemNotFound = "menu item not found"
	ErrMsgRecipeNotFound   = "recipe not found"
	ErrMsgDuplicateID      = "duplicate id"

	// Event errors
	ErrMsgEventNotFound       = "event not found"
	ErrMsgNoRecipesForEvent   = "no recipes found for the selected items"
	ErrMsgInvalidStatusChange = "invalid status change"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrMenuItemNotFound = errors.New(ErrMsgMenuItemNotFound)
	ErrRecipeNotFound   = errors.New(ErrMsgRecipeNotFound)
	ErrDuplicateID      = errors.New(ErrMsgDuplicateID)

	ErrEventNotFound       = errors.New(ErrMsgEventNotFound)
	ErrNoRecipesForEvent   = errors.New(ErrMsgNoRecipesForEvent)
	ErrInvalidStatusChange = errors.New(ErrMsgInvalidStatusChange)

	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
