// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// rng.go - the run-wide random source.
//
// One Source per run, created once from the configured seed and never
// re-seeded. Every component that needs randomness receives this Source by
// reference; the exact order of draws is part of the reproducibility
// contract, so nothing may buffer, fork or reorder them.

package state

import (
	"math/rand"
	"time"
)

// Source is the seeded pseudo-random stream shared by a whole run.
type Source struct {
	seed int64
	rand *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{seed: seed, rand: rand.New(rand.NewSource(seed))}
}

// NewUnseededSource returns a nondeterministic Source (wall-clock seeded).
// The effective seed is still recorded so a surprising run can be replayed.
func NewUnseededSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Seed returns the effective seed the stream was created with.
func (s *Source) Seed() int64 { return s.seed }

// Float64 draws a uniform value from [0,1).
func (s *Source) Float64() float64 { return s.rand.Float64() }

// Vec3 draws three uniform values from [0,1), in x,y,z order.
func (s *Source) Vec3() Vec3 {
	return Vec3{s.rand.Float64(), s.rand.Float64(), s.rand.Float64()}
}

// Shuffle permutes n elements with a Fisher-Yates shuffle via swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rand.Shuffle(n, swap)
}
