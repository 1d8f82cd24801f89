package history

// Log messages
const (
	LogMsgHistoryLoaded       = "Loaded stored history"
	LogMsgHistoryEmpty        = "No stored history"
	LogMsgHistoryMalformed    = "Stored history is malformed, starting empty"
	LogMsgHistorySaveFailed   = "Failed to save history, keeping in-memory state"
	LogMsgHistoryRecorded     = "Spin recorded in history"
	LogMsgHistoryCleared      = "History cleared"
	LogMsgUnexpectedPayload   = "Unexpected payload for spin settled event"
	LogMsgDuplicateSettlement = "Spin already recorded"
)
