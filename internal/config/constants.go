package config

import "time"

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultServiceName     = "catering-planner"
	DefaultCatalogSeedPath = "configs/catalog.yaml"
	DefaultDeadLetterPath  = "logs/event_deadletter.jsonl"
	DefaultCacheSize       = 256
	DefaultCacheTTL        = 10 * time.Minute
	DefaultDBMaxConns      = 10
	DefaultDBMaxConnIdle   = 5 * time.Minute
	DefaultDBMaxConnLife   = 30 * time.Minute
	DefaultEventMaxRetries = 5
	DefaultEventRetryDelay = 2 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)
