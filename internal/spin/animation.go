package spin

import (
	"math"
	"time"
)

// EaseOutCubic is 1 - (1 - p)^3, clamped to [0, 1]
func EaseOutCubic(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(1-p, 3)
}

// Progress is elapsed/duration clamped to [0, 1]. A non-positive duration
// is already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(duration)
	if p > 1 {
		return 1
	}
	return p
}

// RotationAtTime returns the wheel angle elapsed into an animation from
// start to final over duration. It is a pure function so that any client
// can reproduce the same motion from a spin.started event.
func RotationAtTime(start, final float64, elapsed, duration time.Duration) float64 {
	return start + (final-start)*EaseOutCubic(Progress(elapsed, duration))
}
