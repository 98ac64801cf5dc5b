// Package random provides the injectable random sources used by the pattern
// builder.
//
// Every function in the core that needs randomness takes a [Source] argument
// instead of reaching for a package-level generator, so that two generators in
// the same process never share or reseed each other's streams.
//
//	src := random.Seeded("alice") // reproducible
//	src := random.New()           // fresh entropy
package random

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
)

// Source yields uniformly distributed floats in [0, 1).
// *rand.Rand satisfies Source.
type Source interface {
	Float64() float64
}

// New returns an unseeded source drawing its state from runtime entropy.
func New() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Seeded returns a deterministic source for seed. The same seed string always
// yields the same stream. Numeric seeds should be passed in their decimal
// string form.
func Seeded(seed string) *rand.Rand {
	s1, s2 := SeedState(seed)
	return rand.New(rand.NewPCG(s1, s2))
}

// SeedState derives the two PCG state words for seed from its SHA-256 digest.
func SeedState(seed string) (uint64, uint64) {
	sum := sha256.Sum256([]byte(seed))
	return binary.LittleEndian.Uint64(sum[0:8]), binary.LittleEndian.Uint64(sum[8:16])
}

// Fixed replays a fixed sequence of values, cycling when exhausted.
// It is intended for tests and examples that need exact control over draws.
type Fixed struct {
	Values []float64
	pos    int
}

// Float64 returns the next value of the sequence.
func (f *Fixed) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	return v
}

// Draws returns how many values have been consumed.
func (f *Fixed) Draws() int {
	return f.pos
}
