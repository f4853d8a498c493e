/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: random.go
Description: Deterministic pseudorandom number generator for the Akaylee
TestKit. Implements xoshiro256** with SplitMix64 seed expansion to drive
reproducible test shuffling. Not cryptographically secure.
*/

package random

import (
	"math/bits"
	"time"
)

// Random is a seedable xoshiro256** pseudorandom number generator (by David
// Blackman and Sebastiano Vigna, see https://prng.di.unimi.it/) with 256 bits
// of internal state. The same seed always yields the identical sequence of
// draws, which is what makes shuffled test runs reproducible.
//
// Random is deliberately not cryptographically secure and must not be used
// for security-sensitive randomness. It is not safe for concurrent use.
type Random struct {
	seed  uint64
	state [4]uint64
}

// New returns a generator seeded from the current time. Reproducibility
// across runs requires an explicit seed via NewWithSeed or SetSeed.
func New() *Random {
	return NewWithSeed(uint64(time.Now().Unix()))
}

// NewWithSeed returns a generator initialized with the given seed.
func NewWithSeed(seed uint64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// Seed returns the seed the generator was last initialized with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// SetSeed reinitializes all four state words from the given 64-bit seed,
// discarding any prior state. The expansion is SplitMix64: a single 64-bit
// seed must deterministically populate 256 bits of state with good
// statistical independence.
func (r *Random) SetSeed(seed uint64) {
	r.seed = seed
	for i := 0; i < 4; i++ {
		seed += 0x9E3779B97F4A7C15
		result := seed
		result = (result ^ (result >> 30)) * 0xBF58476D1CE4E5B9
		result = (result ^ (result >> 27)) * 0x94D049BB133111EB
		r.state[i] = result ^ (result >> 31)
	}
}

// next advances the state and returns a pseudorandom float64 in [0.0, 1.0),
// mapping the top 53 bits of the 64-bit output word.
func (r *Random) next() float64 {
	result := bits.RotateLeft64(r.state[1]*5, 7) * 9
	temp := r.state[1] << 17
	r.state[2] ^= r.state[0]
	r.state[3] ^= r.state[1]
	r.state[1] ^= r.state[2]
	r.state[0] ^= r.state[3]
	r.state[2] ^= temp
	r.state[3] = bits.RotateLeft64(r.state[3], 45)
	return float64(result>>11) * (1.0 / (1 << 53))
}

// Integer draws are min + floor(u * (max - min + 1)), inclusive on both
// ends. This multiply-by-fraction mapping carries a slight bias for ranges
// not evenly dividing 2^64; that is a documented limitation accepted for a
// test-ordering shuffler, not suitable for statistical simulation.

// Uint32 returns a pseudorandom uint32 in [min, max].
func (r *Random) Uint32(min, max uint32) uint32 {
	return min + uint32(r.next()*float64(max-min+1))
}

// Int32 returns a pseudorandom int32 in [min, max].
func (r *Random) Int32(min, max int32) int32 {
	return min + int32(r.next()*float64(uint32(max-min)+1))
}

// Uint64 returns a pseudorandom uint64 in [min, max].
func (r *Random) Uint64(min, max uint64) uint64 {
	return min + uint64(r.next()*float64(max-min+1))
}

// Int64 returns a pseudorandom int64 in [min, max].
func (r *Random) Int64(min, max int64) int64 {
	return min + int64(r.next()*float64(uint64(max-min)+1))
}

// Float32 returns a pseudorandom float32 in [min, max).
func (r *Random) Float32(min, max float32) float32 {
	return min + float32(r.next()*float64(max-min))
}

// Float64 returns a pseudorandom float64 in [min, max).
func (r *Random) Float64(min, max float64) float64 {
	return min + r.next()*(max-min)
}
