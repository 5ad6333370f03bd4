package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Uniform creates a leaf with a value drawn from U[lo, hi) using rng.
//
// Parameters:
//   - rng: Caller-owned generator; not safe for concurrent use
//   - lo, hi: Distribution bounds
//
// Returns a new parameter leaf with zero gradient.
func Uniform(rng *rand.Rand, lo, hi float64) *autodiff.Value {
	return autodiff.NewValue(lo + rng.Float64()*(hi-lo))
}

// Zero creates a leaf initialized to 0.
//
// This is used for bias initialization.
func Zero() *autodiff.Value {
	return autodiff.NewValue(0)
}

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Reproducible initialization, not security-critical
	return rand.New(rand.NewSource(seed))
}
