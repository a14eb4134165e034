// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"time"

	"github.com/antheory/bcgo/internal/prng"
)

// Source is a PCG32 random source, one per program.Program /
// bcgo.Context, matching spec.md §4.1's "Random" and the library ABI's
// num_seed family (spec.md §6).
type Source struct {
	gen *prng.PCG32
}

// NewSource creates a Source seeded from the current time, so that a
// fresh program/context has usable randomness without an explicit seed.
func NewSource() *Source {
	now := time.Now().UnixNano()
	return &Source{gen: prng.New(uint64(now), uint64(now)>>1|1)}
}

// SeedBytes reseeds the source from exactly prng.SeedSize bytes.
func (s *Source) SeedBytes(b []byte) {
	s.gen = prng.Seed(b)
}

// SeedWithNumber reseeds the source using an integer Number as seed
// material (spec.md §6 num_seedWithNum): its low 128 bits, zero-extended,
// become the seed.
func (s *Source) SeedWithNumber(n Number) {
	var buf [prng.SeedSize]byte
	mag := append([]uint32(nil), n.mag...)
	for i := len(buf) - 1; i >= 0 && len(mag) > 0; i-- {
		var b uint32
		mag, b = divSmall(mag, 256)
		buf[i] = byte(b)
	}
	s.SeedBytes(buf[:])
}

// Reseed reseeds from the wall clock (spec.md §6 num_reseed).
func (s *Source) Reseed() {
	*s = *NewSource()
}

// SeedAsNumber returns the source's current internal state encoded as an
// integer Number (spec.md §6 num_seed2num), the inverse of SeedWithNumber
// for the purposes of round-tripping a seed through calculator state.
func (s *Source) SeedAsNumber() Number {
	b := s.gen.Bytes()
	n := Zero
	hundred := Number{mag: []uint32{256}}
	for _, by := range b {
		n = Add(Mul(n, hundred, 0), NewFromInt64(int64(by)))
	}
	return n
}

// Irand returns a uniform random integer in [0, bound) by rejection
// sampling on the PCG output (spec.md §4.1 Random). bound must be a
// positive integer.
func (s *Source) Irand(bound Number) (Number, error) {
	if bound.scale != 0 || bound.neg || bound.IsZero() {
		return Zero, ErrNonInteger
	}
	// Small, common case: bound fits in a uint32.
	if len(bound.mag) <= 1 {
		b := uint32(1)
		if len(bound.mag) == 1 {
			b = bound.mag[0]
		}
		return NewFromInt64(int64(s.gen.Uint32n(b))), nil
	}
	// General case: rejection sampling against the smallest power of
	// limbBase that spans bound's magnitude.
	for {
		limbs := make([]uint32, len(bound.mag))
		for i := range limbs {
			limbs[i] = s.gen.Uint32n(limbBase)
		}
		cand := Number{mag: trimLimbs(limbs)}
		if Cmp(cand, bound) < 0 {
			return cand, nil
		}
	}
}

// Frand returns a uniform random fraction with exactly `places` digits
// after the decimal point: irand(10^places) / 10^places (spec.md §4.1).
func (s *Source) Frand(places int) (Number, error) {
	if places <= 0 {
		return Zero, nil
	}
	bound := Number{mag: shiftLimbsLeft([]uint32{1}, places)}
	n, err := s.Irand(bound)
	if err != nil {
		return Zero, err
	}
	return Places(RShift(n, places), places), nil
}

// Ifrand returns irand(x) + frand(places) (spec.md §4.1).
func (s *Source) Ifrand(x Number, places int) (Number, error) {
	i, err := s.Irand(x)
	if err != nil {
		return Zero, err
	}
	f, err := s.Frand(places)
	if err != nil {
		return Zero, err
	}
	return Add(i, f), nil
}
