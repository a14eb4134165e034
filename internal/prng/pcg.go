// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prng implements the PCG32 generator (O'Neill, "PCG: A Family of
// Simple Fast Space-Efficient Statistically Good Algorithms for Random
// Number Generation") used by decimal.Rand. The state is two 64-bit words
// (state and stream/increment), matching spec.md §4.1's "4-word state"
// once split into high/low halves for seeding from an arbitrary byte
// string or from a decimal.Number.
package prng

// SeedSize is the number of bytes consumed by Seed.
const SeedSize = 16

const (
	multiplier uint64 = 6364136223846793005
	defaultInc uint64 = 1442695040888963407
)

// PCG32 is a single PCG32 generator stream.
type PCG32 struct {
	state uint64
	inc   uint64
}

// New creates a generator seeded with the given 128 bits of seed material,
// split into an initial state and a stream selector, following the
// reference PCG seeding procedure (inc must be odd).
func New(seedHi, seedLo uint64) *PCG32 {
	g := &PCG32{}
	g.seed(seedHi, seedLo)
	return g
}

func (g *PCG32) seed(initState, initSeq uint64) {
	g.state = 0
	g.inc = (initSeq << 1) | 1
	g.step()
	g.state += initState
	g.step()
}

// Seed reseeds the generator from exactly SeedSize bytes, big-endian,
// the first half becoming the state and the second half the stream.
func Seed(b []byte) *PCG32 {
	if len(b) != SeedSize {
		panic("prng: bad seed length")
	}
	hi := beUint64(b[:8])
	lo := beUint64(b[8:])
	return &PCG32{state: hi, inc: lo<<1 | 1}
}

// Bytes reports the current internal state as SeedSize bytes, suitable for
// later recovery via Seed (decimal.SeedWithNumber round-trips through
// this encoding).
func (g *PCG32) Bytes() [SeedSize]byte {
	var out [SeedSize]byte
	putBeUint64(out[:8], g.state)
	putBeUint64(out[8:], g.inc>>1)
	return out
}

func (g *PCG32) step() {
	g.state = g.state*multiplier + g.inc
}

// Uint32 returns the next pseudo-random 32-bit value.
func (g *PCG32) Uint32() uint32 {
	old := g.state
	g.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Uint64 returns the next pseudo-random 64-bit value, assembled from two
// Uint32 draws.
func (g *PCG32) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

// Uint32n returns a uniform value in [0, n), rejecting draws below
// 2^32 mod n before reducing modulo n to avoid modulo bias.
func (g *PCG32) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("prng: zero bound")
	}
	bound := -n % n
	for {
		v := g.Uint32()
		if v >= bound {
			return v % n
		}
	}
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func putBeUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}
