package utils

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source economy services draw from. Implementations must be safe for
// concurrent use.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() } //nolint:gosec // Game logic randomness, not security critical
func (globalRand) IntN(n int) int   { return rand.IntN(n) }   //nolint:gosec // Game logic randomness, not security critical

// DefaultRand returns a source backed by the runtime's global generator
func DefaultRand() Rand {
	return globalRand{}
}

type seededRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRand returns a deterministic source. The same seed yields the same sequence.
func NewSeededRand(seed uint64) Rand {
	return &seededRand{rnd: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))} //nolint:gosec // Game logic randomness
}

func (r *seededRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *seededRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	return IntBetween(DefaultRand(), min, max)
}

// IntBetween draws an integer in [min, max] from r
func IntBetween(r Rand, min, max int) int {
	if min >= max {
		return min
	}
	return r.IntN(max-min+1) + min
}

// Int64Between draws an int64 in [min, max] from r
func Int64Between(r Rand, min, max int64) int64 {
	return int64(IntBetween(r, int(min), int(max)))
}

// Uniform draws a float64 in [min, max) from r
func Uniform(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
