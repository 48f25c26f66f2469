package utils

import (
	"math/rand/v2"
)

// Rand is a seeded random number generator. It is a plain value: copying a
// Rand gives a second generator that produces the same numbers as the first
// one from that point on. The particle tests rely on this to check what a
// function would have drawn.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg = *rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	if max < min {
		min, max = max, min
	}
	n := uint64(max-min) + 1
	if n == 0 {
		// [min, max] is the whole int64 range.
		return int64(r.pcg.Uint64())
	}
	return min + int64(r.pcg.Uint64()%n)
}

// RFloat returns a random number in [min, max).
func (r *Rand) RFloat(min float64, max float64) float64 {
	return min + r.Float()*(max-min)
}

// Float returns a random number in [0, 1).
func (r *Rand) Float() float64 {
	return float64(r.pcg.Uint64()>>11) / (1 << 53)
}
