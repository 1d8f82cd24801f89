package domain

import "time"

// SpinState is the lifecycle state of the wheel
type SpinState string

const (
	SpinStateIdle     SpinState = "idle"
	SpinStateSpinning SpinState = "spinning"
	SpinStateSettled  SpinState = "settled"
)

// SpinResult is produced once per completed spin and never modified
type SpinResult struct {
	SpinID       string    `json:"spin_id"`
	Winner       Option    `json:"winner"`
	WinnerIndex  int       `json:"winner_index"`
	StartAngle   float64   `json:"start_angle"`
	FinalAngle   float64   `json:"final_angle"`
	TotalOptions int       `json:"total_options"`
	DurationMS   int64     `json:"duration_ms"`
	SettledAt    time.Time `json:"settled_at"`
}

// SpinSnapshot is the read model of the wheel at a given instant
type SpinSnapshot struct {
	State           SpinState `json:"state"`
	SpinID          string    `json:"spin_id,omitempty"`
	StartAngle      float64   `json:"start_angle"`
	FinalAngle      float64   `json:"final_angle"`
	CurrentAngle    float64   `json:"current_angle"`
	Progress        float64   `json:"progress"`
	PointerIndex    int       `json:"pointer_index"`
	TotalOptions    int       `json:"total_options"`
	Winner          *Option   `json:"winner,omitempty"`
	ShowCelebration bool      `json:"show_celebration"`
	StartedAt       time.Time `json:"started_at,omitempty"`
	DurationMS      int64     `json:"duration_ms"`
	Easing          string    `json:"easing"`
}
