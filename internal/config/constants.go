package config

import (
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// Storage drivers selectable with STORAGE_DRIVER
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
)

// Defaults for values not present in the environment
const (
	DefaultPort              = 8080
	DefaultStorageDriver     = StorageDriverFile
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSQLitePath        = "data/spinner.db"
	DefaultStorageDir        = "data"
	DefaultStateCacheTTL     = 30 * time.Second
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultDeadLetterPath    = "logs/event_deadletter.jsonl"
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultHealthInterval    = time.Minute
)

// Bounds enforced by Validate
const (
	MaxSpinTurns     = 50
	MaxSpinDuration  = domain.MaxSpinDuration
	MinSpinDuration  = 100 * time.Millisecond
	MaxPointerOffset = 360.0
)

// Error messages
const (
	ErrMsgAPIKeyRequired   = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPort      = "invalid PORT value"
	ErrMsgUnknownDriver    = "unknown STORAGE_DRIVER"
	ErrMsgSpinTurns        = "SPIN_MIN_TURNS and SPIN_MAX_TURNS must satisfy 1 <= min <= max"
	ErrMsgSpinDuration     = "SPIN_DURATION out of range"
	ErrMsgCelebration      = "CELEBRATION_DURATION must not be negative"
	ErrMsgPointerOffset    = "SPIN_POINTER_OFFSET must be within [0, 360)"
	ErrMsgShutdownTimeout  = "SHUTDOWN_TIMEOUT must be positive"
	ErrMsgEventRetries     = "EVENT_MAX_RETRIES must not be negative"
	ErrMsgStateCacheTTL    = "STATE_CACHE_TTL must not be negative"
	ErrMsgSQLitePathNeeded = "SQLITE_PATH must be set for the sqlite driver"
)
