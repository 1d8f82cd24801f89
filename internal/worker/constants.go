package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerQueueFull is logged when a job is dropped because the queue is full
const LogMsgWorkerQueueFull = "Worker queue full, job dropped"

// ============================================================================
// Log Messages - Storage Health Job
// ============================================================================

const (
	LogMsgStorageHealthy   = "Storage health check passed"
	LogMsgStorageUnhealthy = "Storage health check failed"
)

// ============================================================================
// Job Defaults
// ============================================================================

// DefaultHealthCheckTimeout bounds a single storage ping
const DefaultHealthCheckTimeout = 5 * time.Second

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
