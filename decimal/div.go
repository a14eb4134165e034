// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Div returns a/b truncated to exactly declaredScale fractional digits
// (spec.md §4.1 Division). It fails with ErrDivideByZero if b is zero.
//
// a/b at scale s is floor(am·10^(sb-sa+s) / bm), where am, sa and bm, sb
// are a and b's magnitude/scale pairs: moving the whole computation to a
// common power-of-ten shift keeps the expensive part a single long
// division instead of repeated limb-by-limb quotient digit extraction.
func Div(a, b Number, declaredScale int) (Number, error) {
	if b.IsZero() {
		return Zero, ErrDivideByZero
	}
	if a.IsZero() {
		return Zero, nil
	}
	shift := b.scale - a.scale + declaredScale
	var num, den []uint32
	if shift >= 0 {
		num = shiftLimbsLeft(a.mag, shift)
		den = b.mag
	} else {
		num = a.mag
		den = shiftLimbsLeft(b.mag, -shift)
	}
	quot, _ := divModLimbs(num, den)
	return Number{mag: quot, scale: declaredScale, neg: a.neg != b.neg}.normalize(), nil
}

// Mod returns a mod b = a - (a/b)*b, with a/b computed at scale 0
// (truncating integer division) and the result's sign following a
// (spec.md §4.1 Modulus). It fails with ErrDivideByZero if b is zero.
func Mod(a, b Number) (Number, error) {
	if b.IsZero() {
		return Zero, ErrDivideByZero
	}
	q, _ := Div(a, b, 0)
	r := Sub(a, Mul(q, b, maxInt(a.scale, b.scale)))
	return r.withSign(a.neg).normalize(), nil
}

// DivMod computes both the truncating quotient (at declaredScale) and the
// remainder, matching the library ABI's divmod (spec.md §6), by calling
// Div and then Mod, so its outputs are those of Div and Mod individually.
func DivMod(a, b Number, declaredScale int) (quot, rem Number, err error) {
	quot, err = Div(a, b, declaredScale)
	if err != nil {
		return Zero, Zero, err
	}
	rem, err = Mod(a, b)
	return
}
