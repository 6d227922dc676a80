package config

import "time"

const (
	// ConfigPathCatalog is the seed catalog for items, jobs and stocks
	ConfigPathCatalog = "configs/catalog.toml"

	DefaultServiceName = "spacebot"
)

// Background work and shutdown defaults
const (
	DefaultWorkerCount     = 2
	DefaultWorkerQueueSize = 16
	DefaultShutdownTimeout = 15 * time.Second
)

// Storage backends
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)
