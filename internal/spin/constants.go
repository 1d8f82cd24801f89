package spin

// Log messages
const (
	LogMsgSpinStarted          = "Spin started"
	LogMsgSpinSettled          = "Spin settled"
	LogMsgSpinRejected         = "Spin rejected"
	LogMsgSpinCancelled        = "Spin cancelled"
	LogMsgStaleSettlement      = "Discarding settlement for stale spin"
	LogMsgWinnerMismatch       = "Decoded winner does not match committed winner"
	LogMsgPublishFailed        = "Failed to publish spin event"
	LogMsgStaleOptionsChange   = "Ignoring options change older than the running spin"
	LogMsgUnexpectedPayload    = "Unexpected options.changed payload"
	LogMsgShutdownComplete     = "Spin service shutdown complete"
	LogMsgShutdownTimeout      = "Spin service shutdown timeout, some publishers may still be running"
)

// Cancellation reasons carried by spin.cancelled events
const (
	CancelReasonReset          = "reset"
	CancelReasonOptionsChanged = "options_changed"
	CancelReasonShutdown       = "shutdown"
)

// ErrContext prefixes for wrapped errors
const (
	ErrContextValidate = "failed to validate options"
	ErrContextPlan     = "failed to plan spin"
)
