package domain

// SpinStartedPayload carries everything a client needs to animate the spin
type SpinStartedPayload struct {
	SpinID       string  `json:"spin_id"`
	StartAngle   float64 `json:"start_angle"`
	FinalAngle   float64 `json:"final_angle"`
	TotalOptions int     `json:"total_options"`
	DurationMS   int64   `json:"duration_ms"`
	Easing       string  `json:"easing"`
	Timestamp    int64   `json:"timestamp"`
}

// SpinSettledPayload is the event payload for spin.settled events
type SpinSettledPayload struct {
	SpinID        string  `json:"spin_id"`
	Winner        Option  `json:"winner"`
	WinnerIndex   int     `json:"winner_index"`
	FinalAngle    float64 `json:"final_angle"`
	TotalOptions  int     `json:"total_options"`
	DurationMS    int64   `json:"duration_ms"`
	ParticleCount int     `json:"particle_count"`
	Timestamp     int64   `json:"timestamp"`
}

// SpinCancelledPayload is the event payload for spin.cancelled events
type SpinCancelledPayload struct {
	SpinID    string `json:"spin_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// OptionsChangedPayload is the event payload for options.changed events
type OptionsChangedPayload struct {
	Action      OptionAction `json:"action"`
	OptionCount int          `json:"option_count"`
	Options     []Option     `json:"options"`
	Revision    uint64       `json:"revision"`
	Timestamp   int64        `json:"timestamp"`
}

// HistoryRecordedPayload is the event payload for history.recorded events
type HistoryRecordedPayload struct {
	Entry     HistoryEntry `json:"entry"`
	Count     int          `json:"count"`
	Timestamp int64        `json:"timestamp"`
}

// HistoryClearedPayload is the event payload for history.cleared events
type HistoryClearedPayload struct {
	Timestamp int64 `json:"timestamp"`
}
