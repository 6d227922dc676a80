package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for startup
const (
	LogMsgStartingSpaceBot    = "Starting SpaceBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgStorageReady        = "Storage ready"
	LogMsgCatalogMissing      = "Catalog file not found, skipping seed"
	LogMsgCatalogSeeded       = "Catalog seeded"
	LogMsgMarketJobsStarted   = "Market jobs started"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Error messages for startup
const (
	ErrMsgCreateLogsDir  = "failed to create logs directory: %w"
	ErrMsgOpenLogFile    = "failed to open log file: %w"
	ErrMsgConnectFailed  = "failed to connect to database: %w"
	ErrMsgMigrateFailed  = "failed to migrate database: %w"
	ErrMsgLoadCatalog    = "failed to load catalog: %w"
	ErrMsgSeedCatalog    = "failed to seed catalog: %w"
	ErrMsgUnknownStorage = "unknown storage driver %q"
)

// =============================================================================
// Shutdown
// =============================================================================

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingMarketJobs   = "Stopping market jobs..."
	LogMsgClosingStorage       = "Closing storage..."
	LogMsgServerStopped        = "Server stopped"
)

// DefaultPruneEvery runs history pruning once per this many market ticks
const DefaultPruneEvery = 10

// MinPruneInterval keeps pruning from running more than once a minute on short tick intervals
const MinPruneInterval = time.Minute
