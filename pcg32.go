// Package pcg32 implements the PCG XSH-RR 64/32 pseudorandom number
// generator: a 64-bit linear congruential generator whose output is
// compressed to 32 bits with an xorshift followed by a random rotation.
// Generators sharing a state but carrying different increments produce
// independent streams, so one seed can drive many uncorrelated sequences.
// Not suitable for cryptographic purposes.
// See https://www.pcg-random.org .
package pcg32

import "fmt"

// Initial values of an unseeded Generator and the LCG multiplier,
// as published in the PCG reference implementation.
const (
	initState = 0x853c49e6748fea9b
	initInc   = 0xda3e39cb94b95bdb

	multiplier = 6364136223846793005
)

// Generator holds the complete state of one PCG XSH-RR 64/32 stream:
// the raw LCG state word and the stream-selecting increment.
// Copying a Generator forks it; both copies then produce the same
// sequence until one of them diverges via SetStream or Reseed.
//
// The increment is expected to be odd for full 2^64 period, but only
// Reseed and FromSeed force it so; SetStream, WithStream and FromSource
// use the caller's value verbatim.
//
// A Generator is not safe for concurrent use: give each goroutine its
// own instance or synchronize access externally.
type Generator struct {
	state uint64
	inc   uint64
}

// NewUnseeded returns a Generator in the fixed initial state. Every
// unseeded Generator is identical and yields the same sequence, so this
// is mainly the base for Reseed; callers wanting unpredictable output
// should construct with FromSeed or FromSource instead.
func NewUnseeded() Generator {
	return Generator{state: initState, inc: initInc}
}

// FromSeed returns an unseeded Generator reseeded with the given words.
func FromSeed(seed0, seed1 uint64) Generator {
	g := NewUnseeded()
	g.Reseed(seed0, seed1)
	return g
}

// Reseed deterministically reinitializes the Generator from two seed
// words. seed1 selects the stream; it is shifted up one bit and its low
// bit is forced to 1, so the resulting increment is always odd. Both
// words are then avalanched into the state by two discarded draws, which
// decorrelates the early output of seeds differing in only a few bits.
func (g *Generator) Reseed(seed0, seed1 uint64) {
	g.state = 0
	g.inc = seed1<<1 | 1
	g.Uint32()
	g.state += seed0
	g.Uint32()
}

// SetStream switches the Generator to the stream selected by id, leaving
// the state untouched. The id is used verbatim: an even id still works,
// but halves the period and weakens the stream statistically, so prefer
// odd ids when calling this directly.
func (g *Generator) SetStream(id uint64) {
	g.inc = id
}

// WithStream returns a copy of the Generator moved onto the stream
// selected by id. Like SetStream, the id is used verbatim.
func (g Generator) WithStream(id uint64) Generator {
	return Generator{state: g.state, inc: id}
}

// Uint32 advances the Generator one step and returns the next value of
// the stream. All arithmetic wraps modulo 2^64; there are no failure
// modes. The output permutation xorshifts the pre-advance state down to
// 32 bits and right-rotates the result by the state's top five bits; the
// rotation count is negated under a 5-bit mask, so a zero count cannot
// turn into a shift by 32.
func (g *Generator) Uint32() uint32 {
	old := g.state
	g.state = old*multiplier + g.inc
	xorshifted := uint32((old>>18 ^ old) >> 27)
	rot := uint32(old >> 59)
	return xorshifted>>rot | xorshifted<<(-rot&31) // rotr(xorshifted, rot)
}

// Uint32n returns a uniform pseudorandom number in [0, bound), consuming
// one Uint32 draw in the common case. Reduction is the multiply-shift of
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
// with the biased low region rejected, so the result is exactly uniform.
// Uint32n(0) returns 0.
func (g *Generator) Uint32n(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	v := g.Uint32()
	prod := uint64(v) * uint64(bound)
	low := uint32(prod)
	if low < bound {
		thresh := -bound % bound
		for low < thresh {
			v = g.Uint32()
			prod = uint64(v) * uint64(bound)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// String implements fmt.Stringer, rendering both state words in hex.
// The rendered form pins down the full Generator state, so logging it
// is enough to reproduce the remainder of a sequence.
func (g Generator) String() string {
	return fmt.Sprintf("pcg32(0x%016x, 0x%016x)", g.state, g.inc)
}
