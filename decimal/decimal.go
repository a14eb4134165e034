// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decimal implements arbitrary-precision signed decimal numbers:
// parsing and printing in any radix 2..36, addition, subtraction,
// Karatsuba-accelerated multiplication, long division, modulus, integer
// power, modular exponentiation, square root, decimal-point shifts, and
// PCG-backed random generation. It is the number engine described in
// spec.md §3 and §4.1 — the core of the calculator.
package decimal

import "fmt"

// limbBase and limbDigits pick the digit grouping: each limb holds
// limbDigits decimal digits, and limbBase == 10^limbDigits. The pair is
// chosen so that limb*limb fits comfortably in a uint64 accumulator
// (999999999^2 < 1e18 < 1<<63).
const (
	limbDigits = 9
	limbBase   = 1_000_000_000
)

// Number is a signed arbitrary-precision decimal value: its magnitude is
// mag (little-endian base-limbBase limbs, mag[0] least significant) and
// its value is ± mag · 10^(-scale). This realizes spec.md §3's
// `{digits, rdx, scale, neg}` data model with rdx folded into scale: the
// "radix position" is simply "scale decimal digits from the low end of
// mag", which is what makes lshift/rshift (spec.md §4.1) an O(1)
// adjustment of scale rather than a limb-array rewrite.
//
// Invariants: mag has no leading (most significant) zero limb; if mag is
// empty the value is exactly zero and neg is false; scale >= 0.
type Number struct {
	mag   []uint32
	scale int
	neg   bool
}

// Zero is the canonical zero value; the zero Number already satisfies
// every invariant, so var decls of Number need no explicit initializer.
var Zero = Number{}

// One is the canonical integer 1.
var One = Number{mag: []uint32{1}}

// NewFromInt64 builds an integer Number from a machine int64.
func NewFromInt64(v int64) Number {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	n := Number{neg: neg}
	for u > 0 {
		n.mag = append(n.mag, uint32(u%limbBase))
		u /= limbBase
	}
	return n.normalize()
}

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool {
	return len(n.mag) == 0
}

// Neg reports whether n is negative (zero is never negative).
func (n Number) Neg() bool {
	return n.neg
}

// Scale reports the declared number of digits after the decimal point.
func (n Number) Scale() int {
	return n.scale
}

// Digits reports the number of significant decimal digits in n (the
// length() built-in of spec.md §4.4): the digit count of the integer
// part plus the declared scale, with a bare zero counting as one digit.
func (n Number) Digits() int {
	if n.IsZero() {
		return 1
	}
	total := limbWidth(n.mag)
	if total < n.scale {
		total = n.scale
	}
	return total
}

// limbWidth returns the number of significant decimal digits in a
// little-endian limb magnitude.
func limbWidth(mag []uint32) int {
	if len(mag) == 0 {
		return 0
	}
	top := mag[len(mag)-1]
	return (len(mag)-1)*limbDigits + decimalWidth(top)
}

func decimalWidth(v uint32) int {
	w := 1
	for v >= 10 {
		v /= 10
		w++
	}
	return w
}

// negated returns a copy of n with the sign flipped; zero stays non-negative.
func (n Number) negated() Number {
	if n.IsZero() {
		return n
	}
	n.neg = !n.neg
	return n
}

// Negate returns a copy of n with its sign flipped (zero stays
// non-negative), for callers outside this package — unary '-', pre/post
// '--', and abs() all need this (spec.md §4.3/§4.4).
func (n Number) Negate() Number {
	return n.withSign(!n.neg)
}

// withSign returns a copy of n forced to the given sign (zero stays
// non-negative regardless).
func (n Number) withSign(neg bool) Number {
	if n.IsZero() {
		return n
	}
	n.neg = neg
	return n
}

// clone makes a deep copy of n's limb slice; every op that must not alias
// its input with its output goes through this.
func (n Number) clone() Number {
	mag := make([]uint32, len(n.mag))
	copy(mag, n.mag)
	n.mag = mag
	return n
}

// Copy returns a deep copy of n, matching the library façade's num_copy
// semantics (spec.md §6) of never sharing the backing limb slice.
func (n Number) Copy() Number {
	return n.clone()
}

// normalize trims high zero limbs and restores the zero-is-nonnegative
// invariant. Every constructor and arithmetic result must pass through
// this before being returned to a caller.
func (n Number) normalize() Number {
	top := len(n.mag)
	for top > 0 && n.mag[top-1] == 0 {
		top--
	}
	n.mag = n.mag[:top]
	if n.IsZero() {
		n.neg = false
	}
	return n
}

// String renders n in base 10 with its declared scale, for use in Go
// error messages and tests; the calculator-facing formatter is Print.
func (n Number) String() string {
	return n.Print(10)
}

// GoString supports %#v and debugging sessions.
func (n Number) GoString() string {
	return fmt.Sprintf("decimal.Number(%s)", n.String())
}
