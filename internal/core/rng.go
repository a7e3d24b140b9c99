package core

import (
	"math/rand/v2"
	"time"
)

// BitSource supplies independent unbiased random bits used to seed cell rows.
type BitSource interface {
	Bit() uint8
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG creates an RNG seeded from the wall clock.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Bit returns 0 or 1 with equal probability.
func (r *RNG) Bit() uint8 {
	return uint8(r.r.Uint64() & 1)
}
