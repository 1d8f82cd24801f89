package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.settled")
const (
	// EventTypeSpinStarted is published when the wheel starts turning
	EventTypeSpinStarted = "spin.started"

	// EventTypeSpinSettled is published once per completed spin
	EventTypeSpinSettled = "spin.settled"

	// EventTypeSpinCancelled is published when a spin is reset before it settles
	EventTypeSpinCancelled = "spin.cancelled"

	// EventTypeOptionsChanged is published after every successful option list mutation
	EventTypeOptionsChanged = "options.changed"

	// EventTypeHistoryRecorded is published when a history entry is stored
	EventTypeHistoryRecorded = "history.recorded"

	// EventTypeHistoryCleared is published when history is cleared
	EventTypeHistoryCleared = "history.cleared"
)
