// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
)

// The "Err" family mirrors the consuming operations above but writes its
// result into a caller-supplied destination handle and consumes none of
// its operands (spec.md §6 "Non-consuming variants with explicit
// destination are provided in parallel (_err suffix family)"). Per
// DESIGN.md's pinned-down open question on aliasing, dst must differ
// from every source handle; passing the same handle for both is a
// KindInvalidContext error rather than silent aliasing.

func distinctFromAll(dst Handle, srcs ...Handle) error {
	for _, s := range srcs {
		if dst == s {
			return diag.Errorf(diag.KindInvalidContext, "bcgo", 0, "dst handle %d aliases a source handle", dst)
		}
	}
	return nil
}

func (c *Context) binaryErr(dst, a, b Handle, f func(x, y decimal.Number) (decimal.Number, error)) error {
	if err := distinctFromAll(dst, a, b); err != nil {
		return err
	}
	x, err := c.lookup(a)
	if err != nil {
		return err
	}
	y, err := c.lookup(b)
	if err != nil {
		return err
	}
	r, err := f(x, y)
	if err != nil {
		return err
	}
	return c.set(dst, r)
}

// AddErr writes a+b into dst without consuming a or b.
func AddErr(dst, a, b Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	return c.binaryErr(dst, a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Add(x, y), nil
	})
}

// SubErr writes a-b into dst without consuming a or b.
func SubErr(dst, a, b Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	return c.binaryErr(dst, a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Sub(x, y), nil
	})
}

// MulErr writes a*b into dst without consuming a or b.
func MulErr(dst, a, b Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	return c.binaryErr(dst, a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Mul(x, y, c.scale), nil
	})
}

// DivErr writes a/b into dst without consuming a or b.
func DivErr(dst, a, b Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	return c.binaryErr(dst, a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Div(x, y, c.scale)
	})
}

// ModErr writes a%b into dst without consuming a or b.
func ModErr(dst, a, b Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	return c.binaryErr(dst, a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Mod(x, y)
	})
}

// PowErr writes a^b into dst without consuming a or b.
func PowErr(dst, a, b Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	return c.binaryErr(dst, a, b, func(x, y decimal.Number) (decimal.Number, error) {
		return decimal.Pow(x, y, c.scale)
	})
}

// SqrtErr writes the square root of a into dst without consuming a.
func SqrtErr(dst, a Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	if err := distinctFromAll(dst, a); err != nil {
		return err
	}
	n, err := c.lookup(a)
	if err != nil {
		return err
	}
	r, err := decimal.Sqrt(n, c.scale)
	if err != nil {
		return err
	}
	return c.set(dst, r)
}

// ModExpErr writes a^b mod m into dst without consuming a, b, or m.
func ModExpErr(dst, a, b, m Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	if err := distinctFromAll(dst, a, b, m); err != nil {
		return err
	}
	x, err := c.lookup(a)
	if err != nil {
		return err
	}
	y, err := c.lookup(b)
	if err != nil {
		return err
	}
	z, err := c.lookup(m)
	if err != nil {
		return err
	}
	r, err := decimal.ModExp(x, y, z)
	if err != nil {
		return err
	}
	return c.set(dst, r)
}

// DivModErr writes the quotient into dstQ and the remainder into dstR
// without consuming a or b (spec.md §9 open question (b): the _err
// variants' output handles must not alias each other or the sources).
func DivModErr(dstQ, dstR, a, b Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	if err := distinctFromAll(dstQ, dstR, a, b); err != nil {
		return err
	}
	if err := distinctFromAll(dstR, dstQ, a, b); err != nil {
		return err
	}
	x, err := c.lookup(a)
	if err != nil {
		return err
	}
	y, err := c.lookup(b)
	if err != nil {
		return err
	}
	quot, rem, err := decimal.DivMod(x, y, c.scale)
	if err != nil {
		return err
	}
	if err := c.set(dstQ, quot); err != nil {
		return err
	}
	return c.set(dstR, rem)
}
