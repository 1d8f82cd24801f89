package event

import "time"

// EventSchemaVersion is stamped on every spinner event
const EventSchemaVersion = "1.0"

// Retry queue
const (
	retryQueueSize = 256

	// maxRetryDelay caps the doubling backoff so a long outage does not
	// push a settled spin's delivery out by minutes
	maxRetryDelay = 30 * time.Second
)

// Dead-letter log
const (
	// DeadLetterSchemaVersion is bumped when DeadLetterEntry changes shape
	DeadLetterSchemaVersion = "2"
	deadLetterFileMode      = 0644
)

// Error message format strings
const (
	ErrMsgNilPayloadFormat     = "%s event has no payload"
	ErrMsgPayloadDecodeFormat  = "%s payload: %w"
	ErrMsgDeadLetterLineFormat = "dead-letter line %d: %w"
	ErrMsgHandlerErrorFormat   = "%d of %d subscribers failed on %s: %w"
)

// Log messages
const (
	LogMsgEventPublishFailed    = "Event delivery failed, queued for retry"
	LogMsgEventPublishDropped   = "Event delivery failed"
	LogMsgRetryQueueFull        = "Retry queue full, event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Failed to write dead-letter entry"
	LogMsgEventRetryExhausted   = "Event retries exhausted, dead-lettering"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgEventRetrySucceeded   = "Event delivered on retry"
	LogMsgEventDroppedShutdown  = "Event arrived during shutdown, dead-lettered"
	LogMsgQueueDrainedShutdown  = "Retry queue drained on shutdown"
	LogMsgShutdownTimeout       = "Event publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event dead-lettered"
)

// retryDelayFor is the wait before the given retry attempt: base, 2x base,
// 4x base and so on, capped at maxRetryDelay
func retryDelayFor(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}
