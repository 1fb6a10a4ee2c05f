package vmath

import (
	"math"
)

// Geometry constants shared by the generators
const (
	// Phi is the golden ratio
	Phi = 1.618033988749895
	// GoldenAngle is 2π/φ² — the divergence angle for phyllotaxis-style spacing
	GoldenAngle = 2 * math.Pi / (Phi * Phi)
)

// HashString folds a key into a reproducible 32-bit seed.
// Polynomial rolling hash (base 31) over code points, wrapped to
// int32 and taken absolute. Stable across platforms and versions:
// identical string always yields the identical seed.
func HashString(key string) uint32 {
	var h int32
	for _, r := range key {
		h = h*31 + int32(r)
	}
	a := int64(h)
	if a < 0 {
		a = -a
	}
	return uint32(a)
}

// SeedRand is a linear congruential generator with fixed constants
// (multiplier 1664525, increment 1013904223, modulus 2^32).
// The exact constants and wraparound are load-bearing: the n-th output
// for a given seed must match on every platform, every run. Do not
// substitute math/rand.
type SeedRand struct {
	state uint32
}

// NewSeedRand creates a generator positioned at the start of the
// sequence for seed. Zero is a valid seed.
func NewSeedRand(seed uint32) *SeedRand {
	return &SeedRand{state: seed}
}

// NewKeyRand creates a generator seeded from a string key
func NewKeyRand(key string) *SeedRand {
	return NewSeedRand(HashString(key))
}

// Next advances the state and returns it
func (r *SeedRand) Next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// Float64 returns the next value in [0,1)
func (r *SeedRand) Float64() float64 {
	return float64(r.Next()) / 4294967296.0
}

// Range returns the next value in [lo,hi)
func (r *SeedRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Intn returns the next integer in [0,n), or 0 for n <= 0
func (r *SeedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// Angle returns the next angle in [0,2π)
func (r *SeedRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// Chance returns true with probability p
func (r *SeedRand) Chance(p float64) bool {
	return r.Float64() < p
}
