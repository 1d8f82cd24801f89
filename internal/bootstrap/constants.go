package bootstrap

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

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new session file
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSpinner     = "Starting decision spinner"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageInitialized   = "Storage initialized"
	LogMsgMigrationsApplied    = "Migrations applied"
	ErrMsgUnknownStorageDriver = "unknown storage driver"
	ErrMsgFailedConnectStorage = "failed to connect storage"
	ErrMsgFailedMigrate        = "failed to run migrations"
	ErrMsgFailedCreateDataDir  = "failed to create data directory"
)

// =============================================================================
// Catalogue Loading
// =============================================================================

const (
	LogMsgLoadingSamples      = "Loading sample sets from YAML..."
	LogMsgSamplesLoaded       = "Sample sets loaded"
	LogMsgLoadingPlacements   = "Loading ad placements from YAML..."
	LogMsgPlacementsLoaded    = "Ad placements loaded"
	ErrMsgFailedReadSamples   = "failed to read sample sets"
	ErrMsgInvalidSamples      = "invalid sample sets"
	ErrMsgFailedReadPlacement = "failed to read ad placements"
	ErrMsgInvalidPlacements   = "invalid ad placements"
)

// =============================================================================
// Services
// =============================================================================

const (
	LogMsgAdsDisabled         = "Ads disabled, no publisher id configured"
	ErrMsgFailedInitializeAds = "failed to initialize ads"
	ErrMsgFailedLoadOptions   = "failed to load options"
	ErrMsgFailedLoadHistory   = "failed to load history"
	LogMsgServicesInitialized = "Services initialized"
	HealthJobName             = "storage-health"
	HealthWorkerCount         = 1
	HealthWorkerQueueSize     = 1
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgAnalyticsRegistered        = "Analytics tracker registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStorageCloseFailed         = "Storage close failed"

	// Service names for shutdown logging
	ServiceNameSpin = "spin"
	ServiceNameAds  = "ads"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
