package spin

import (
	"fmt"
	"math"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// Angle convention: the wheel rotates clockwise, sectors are laid out
// clockwise from the wheel's zero boundary, and the pointer sits
// pointerOffset degrees clockwise from the unrotated zero boundary
// (0 = 12 o'clock).

// PickWeightedWinner selects an index with probability proportional to
// each option's weight. Options without a positive weight count as 1.
func PickWeightedWinner(src Source, options []domain.Option) (int, error) {
	if len(options) == 0 {
		return 0, domain.ErrInsufficientOptions
	}

	totalWeight := 0.0
	for _, o := range options {
		totalWeight += o.EffectiveWeight()
	}

	r := src.Float64() * totalWeight
	for i, o := range options {
		r -= o.EffectiveWeight()
		if r <= 0 {
			return i, nil
		}
	}

	// Floating point residue; the last sector absorbs it
	return len(options) - 1, nil
}

// SectionAngle is the arc covered by one option
func SectionAngle(totalOptions int) float64 {
	if totalOptions <= 0 {
		return domain.FullTurnDegrees
	}
	return domain.FullTurnDegrees / float64(totalOptions)
}

// AngleForWinner returns the positive rotation delta that brings the middle
// of the winner's sector under a pointer at 0 degrees, after a whole number
// of extra turns in [minSpins, maxSpins].
func AngleForWinner(src Source, winnerIndex, totalOptions, minSpins, maxSpins int) float64 {
	section := SectionAngle(totalOptions)
	target := float64(winnerIndex)*section + section/2

	if maxSpins < minSpins {
		maxSpins = minSpins
	}
	extraSpins := minSpins + src.IntN(maxSpins-minSpins+1)

	return domain.FullTurnDegrees*float64(extraSpins) + (domain.FullTurnDegrees - target)
}

// Normalize maps any angle into [0, 360)
func Normalize(angle float64) float64 {
	m := math.Mod(angle, domain.FullTurnDegrees)
	if m < 0 {
		m += domain.FullTurnDegrees
	}
	if m >= domain.FullTurnDegrees {
		m = 0
	}
	return m
}

// ApplyRotation moves the wheel forward from start so that the final
// absolute angle is congruent to delta. The wheel keeps turning in the same
// direction on every spin instead of unwinding to zero.
func ApplyRotation(start, delta float64) float64 {
	return start - Normalize(start) + delta
}

// DecodeWinnerFromAngle returns the index of the sector under the pointer
// for an absolute wheel rotation.
func DecodeWinnerFromAngle(absoluteAngle float64, totalOptions int, pointerOffset float64) int {
	if totalOptions <= 0 {
		return 0
	}
	section := SectionAngle(totalOptions)
	underPointer := Normalize(pointerOffset - Normalize(absoluteAngle))
	return int(math.Floor(underPointer/section)) % totalOptions
}

// Wheel binds the geometry used by a spinner
type Wheel struct {
	PointerOffset float64
	MinSpins      int
	MaxSpins      int
	Source        Source
}

// NewWheel returns a wheel with the default geometry and random source
func NewWheel() Wheel {
	return Wheel{
		PointerOffset: domain.DefaultPointerOffset,
		MinSpins:      domain.DefaultMinSpins,
		MaxSpins:      domain.DefaultMaxSpins,
		Source:        DefaultSource(),
	}
}

// Plan picks the winner and the final absolute angle that lands on it
func (w Wheel) Plan(start float64, options []domain.Option) (int, float64, error) {
	src := w.Source
	if src == nil {
		src = DefaultSource()
	}

	idx, err := PickWeightedWinner(src, options)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", ErrContextPlan, err)
	}

	delta := AngleForWinner(src, idx, len(options), w.MinSpins, w.MaxSpins) + w.PointerOffset
	return idx, ApplyRotation(start, delta), nil
}

// WinnerAt decodes the option index under this wheel's pointer
func (w Wheel) WinnerAt(absoluteAngle float64, totalOptions int) int {
	return DecodeWinnerFromAngle(absoluteAngle, totalOptions, w.PointerOffset)
}
