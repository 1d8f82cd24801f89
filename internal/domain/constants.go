package domain

import "time"

// Option list bounds
const (
	MinOptions          = 2
	MaxOptions          = 20
	MaxOptionTextLength = 100
	DefaultOptionWeight = 1.0
	MaxOptionWeight     = 100.0
)

// History bounds
const (
	HistoryLimit = 20
)

// Spin defaults
const (
	DefaultSpinDuration        = 3 * time.Second
	MaxSpinDuration            = 10 * time.Second
	DefaultCelebrationDuration = 5 * time.Second
	DefaultMinSpins            = 5
	DefaultMaxSpins            = 10
	DefaultPointerOffset       = 0.0

	// DefaultEasing is the CSS timing function matching EaseOutCubic closely
	// enough for clients that animate with CSS transitions.
	DefaultEasing = "cubic-bezier(0.23, 1, 0.32, 1)"

	// CelebrationParticleCount is forwarded to clients with the settled event
	CelebrationParticleCount = 200

	FullTurnDegrees = 360.0
)

// Storage keys, shared by every driver so that state can move between them
const (
	StorageKeyOptions = "decision-spinner-options"
	StorageKeyHistory = "decision-spinner-history"
)

// DefaultOptionColors is the wheel palette. Colors are assigned by insertion
// index modulo the palette length.
var DefaultOptionColors = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#96CEB4",
	"#FFEAA7",
	"#DDA0DD",
	"#98D8C8",
	"#F7DC6F",
	"#BB8FCE",
	"#85C1E9",
	"#F8C471",
	"#82E0AA",
	"#F1948A",
	"#85C1E9",
	"#F4D03F",
	"#A569BD",
	"#5DADE2",
	"#58D68D",
}

// ColorForIndex returns the palette color for a list position
func ColorForIndex(i int) string {
	if i < 0 {
		i = -i
	}
	return DefaultOptionColors[i%len(DefaultOptionColors)]
}

// DefaultOptionTexts is the option set used when nothing has been stored yet
var DefaultOptionTexts = []string{"Pizza", "Burger", "Sushi", "Tacos"}
