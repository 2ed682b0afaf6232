package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness the simulation draws from. Tests substitute
// scripted sources.
type Rand interface {
	Intn(n int) int
}

// ResolveSeed turns the "pick one for me" seed 0 into a concrete seed so the
// run can be replayed.
func ResolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

// NewRand returns a deterministic generator for a non-zero seed
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}
