// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"github.com/antheory/bcgo/decimal"
)

// Every consuming arithmetic method below follows the same shape: look
// up its Handle inputs, compute, and only once the computation has
// succeeded release the inputs and allocate a fresh Handle for the
// result (spec.md §4.6 "every operation with inputs consumes those
// inputs... and returns a fresh handle"); on error the inputs stay live. The parallel "Err" method in
// errvariants.go performs the identical computation but writes into a
// caller-supplied destination instead.

func (c *Context) binary(a, b Handle, f func(x, y decimal.Number) (decimal.Number, error)) (Handle, error) {
	x, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	y, err := c.lookup(b)
	if err != nil {
		return 0, err
	}
	r, err := f(x, y)
	if err != nil {
		return 0, err
	}
	c.release(a)
	c.release(b)
	return c.alloc(r), nil
}

// Add computes a+b, consuming both (spec.md §6 "add/sub/mul/div/mod/pow
// (a,b) → H").
func Add(a, b Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.binary(a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Add(x, y), nil
	})
}

// Sub computes a-b, consuming both.
func Sub(a, b Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.binary(a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Sub(x, y), nil
	})
}

// Mul computes a*b at the context's scale, consuming both.
func Mul(a, b Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.binary(a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Mul(x, y, c.scale), nil
	})
}

// Div computes a/b at the context's scale, consuming both.
func Div(a, b Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.binary(a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Div(x, y, c.scale)
	})
}

// Mod computes a%b, consuming both.
func Mod(a, b Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.binary(a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Mod(x, y)
	})
}

// Pow computes a^b at the context's scale, consuming both.
func Pow(a, b Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.binary(a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Pow(x, y, c.scale)
	})
}

// Places sets a's scale to exactly p fractional digits, padding with
// zeros or truncating, consuming a
// (spec.md §6 extended op "places").
func Places(a Handle, p int) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	c.release(a)
	return c.alloc(decimal.Places(n, p)), nil
}

// LShift shifts a left by p decimal places, consuming a.
func LShift(a Handle, p int) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	c.release(a)
	return c.alloc(decimal.LShift(n, p)), nil
}

// RShift shifts a right by p decimal places, consuming a.
func RShift(a Handle, p int) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	c.release(a)
	return c.alloc(decimal.RShift(n, p)), nil
}

// Sqrt computes the square root of a at the context's scale, consuming
// a.
func Sqrt(a Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	r, err := decimal.Sqrt(n, c.scale)
	if err != nil {
		return 0, err
	}
	c.release(a)
	return c.alloc(r), nil
}

// DivMod computes both the quotient and remainder of a/b in one call,
// consuming both inputs (spec.md §6 "divmod(a,b,*q,*r) → Err").
func DivMod(a, b Handle) (q, r Handle, err error) {
	c, err := current()
	if err != nil {
		return 0, 0, err
	}
	x, err := c.lookup(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := c.lookup(b)
	if err != nil {
		return 0, 0, err
	}
	quot, rem, err := decimal.DivMod(x, y, c.scale)
	if err != nil {
		return 0, 0, err
	}
	c.release(a)
	c.release(b)
	return c.alloc(quot), c.alloc(rem), nil
}

// ModExp computes a^b mod c (dc's "|"), consuming all three inputs
// (spec.md §6 "modexp(a,b,c) → H").
func ModExp(a, b, m Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	x, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	y, err := c.lookup(b)
	if err != nil {
		return 0, err
	}
	z, err := c.lookup(m)
	if err != nil {
		return 0, err
	}
	r, err := decimal.ModExp(x, y, z)
	if err != nil {
		return 0, err
	}
	c.release(a)
	c.release(b)
	c.release(m)
	return c.alloc(r), nil
}
