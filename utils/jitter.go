package utils

import (
	"math/rand/v2"
)

// Jitter supplies the random perturbations applied to synthetic figures.
type Jitter interface {
	// Factor returns a multiplier uniformly distributed in [lo, hi).
	Factor(lo, hi float64) float64
	// Chance reports true with probability p.
	Chance(p float64) bool
	// Intn returns a value in [0, n). n <= 0 yields 0.
	Intn(n int) int
}

type seededJitter struct {
	r *rand.Rand
}

// NewSeededJitter returns a reproducible Jitter: the same seed always yields
// the same sequence. It is not safe for concurrent use.
func NewSeededJitter(seed uint64) Jitter {
	return &seededJitter{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (j *seededJitter) Factor(lo, hi float64) float64 {
	return lo + j.r.Float64()*(hi-lo)
}

func (j *seededJitter) Chance(p float64) bool {
	return j.r.Float64() < p
}

func (j *seededJitter) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return j.r.IntN(n)
}

// NewSeed draws a fresh seed for callers that did not pin one.
func NewSeed() uint64 {
	return rand.Uint64()
}

// FixedJitter returns the same values on every call.
type FixedJitter struct {
	Scale float64
	Hit   bool
	Count int
}

// Neutral is a FixedJitter whose factor leaves every figure unchanged.
var Neutral = FixedJitter{Scale: 1}

func (f FixedJitter) Factor(lo, hi float64) float64 {
	return f.Scale
}

func (f FixedJitter) Chance(p float64) bool {
	return f.Hit
}

func (f FixedJitter) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if f.Count >= n {
		return n - 1
	}
	if f.Count < 0 {
		return 0
	}
	return f.Count
}
