package spin

import (
	"math/rand/v2"

	"github.com/osse101/DecisionSpinner_Go/internal/utils"
)

// Source supplies randomness to the engine. Tests inject deterministic
// implementations; nothing here needs to be cryptographically secure.
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

type defaultSource struct{}

// DefaultSource returns the process-wide pseudo random source
func DefaultSource() Source {
	return defaultSource{}
}

func (defaultSource) Float64() float64 {
	return utils.RandomFloat()
}

func (defaultSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return utils.RandomInt(0, n-1)
}

type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a reproducible source for tests and replays
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // Wheel randomness, not security critical
}

func (s *seededSource) Float64() float64 {
	return s.r.Float64()
}

func (s *seededSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}
