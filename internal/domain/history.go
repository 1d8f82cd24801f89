package domain

import "time"

// HistoryEntry records one completed spin
type HistoryEntry struct {
	ID           string    `json:"id"`
	Winner       Option    `json:"winner"`
	Timestamp    time.Time `json:"timestamp"`
	TotalOptions int       `json:"total_options"`
}
