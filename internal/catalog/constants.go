package catalog

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// CacheSchemaVersion is the current version of the cached recipe entries.
// Increment when the cached structure changes to invalidate old entries.
const CacheSchemaVersion = "1.0"

// Seed file formats, chosen by extension
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// SchemaName is the registered name of the seed file JSON schema
const SchemaName = "catalog.schema.json"

// Log messages
const (
	LogMsgMenuItemCreated   = "Menu item created"
	LogMsgMenuItemUpdated   = "Menu item updated"
	LogMsgMenuItemDeleted   = "Menu item deleted"
	LogMsgRecipeCreated     = "Recipe created"
	LogMsgRecipeUpdated     = "Recipe updated"
	LogMsgRecipeDeleted     = "Recipe deleted"
	LogMsgSeedUnchanged     = "Catalog seed file unchanged, skipping sync"
	LogMsgSeedSyncCompleted = "Catalog sync completed"
	LogMsgSyncMetaFailed    = "Failed to update catalog sync metadata"
)
