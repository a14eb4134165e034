// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
	"github.com/antheory/bcgo/internal/prng"
)

// NumSeed reseeds the active context's PCG32 source from exactly
// prng.SeedSize raw bytes (spec.md §6 "num_seed(seed[SEED_SIZE]) →
// Err").
func NumSeed(seed []byte) error {
	c, err := current()
	if err != nil {
		return err
	}
	if len(seed) != prng.SeedSize {
		return diag.Errorf(diag.KindInvalidString, "bcgo", 0, "seed must be %d bytes", prng.SeedSize)
	}
	c.rand.SeedBytes(seed)
	return nil
}

// NumSeedWithNum reseeds from an integer Number's low bits, consuming
// the handle (spec.md §6 "num_seedWithNum(H) → Err").
func NumSeedWithNum(h Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	n, err := c.lookup(h)
	if err != nil {
		return err
	}
	c.rand.SeedWithNumber(n)
	c.release(h)
	return nil
}

// NumReseed reseeds from the wall clock (spec.md §6 "num_reseed()").
func NumReseed() error {
	c, err := current()
	if err != nil {
		return err
	}
	c.rand.Reseed()
	return nil
}

// NumSeed2Num returns the source's current internal state as an integer
// Number handle (spec.md §6 "num_seed2num() → H").
func NumSeed2Num() (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.alloc(c.rand.SeedAsNumber()), nil
}

// Irand returns a fresh handle holding a uniform random integer in
// [0, bound), consuming bound (spec.md §6 "irand").
func Irand(bound Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(bound)
	if err != nil {
		return 0, err
	}
	r, err := c.rand.Irand(n)
	if err != nil {
		return 0, err
	}
	c.release(bound)
	return c.alloc(r), nil
}

// Frand returns a fresh handle holding a uniform random fraction with
// `places` digits after the decimal point (spec.md §6 "frand").
func Frand(places int) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	r, err := c.rand.Frand(places)
	if err != nil {
		return 0, err
	}
	return c.alloc(r), nil
}

// Ifrand returns irand(x) + frand(places), consuming x (spec.md §6
// "ifrand").
func Ifrand(x Handle, places int) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(x)
	if err != nil {
		return 0, err
	}
	r, err := c.rand.Ifrand(n, places)
	if err != nil {
		return 0, err
	}
	c.release(x)
	return c.alloc(r), nil
}

// RandInt returns a raw unsigned 32-bit random word, bypassing the
// arena entirely (spec.md §6 "rand_int()").
func RandInt() (uint32, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.rawRandUint32(), nil
}

// RandBounded returns a raw unsigned random word in [0, bound) without
// allocating a handle (spec.md §6 "rand_bounded(bound)").
func RandBounded(bound uint32) (uint32, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.rawRandUint32n(bound), nil
}

func (c *Context) rawRandUint32() uint32 {
	n, _ := c.rand.Irand(decimal.NewFromInt64(1 << 32))
	v, _ := numberToInt64(n)
	return uint32(v)
}

func (c *Context) rawRandUint32n(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	n, _ := c.rand.Irand(decimal.NewFromInt64(int64(bound)))
	v, _ := numberToInt64(n)
	return uint32(v)
}
