// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Places sets n's scale/rdx to exactly p digits, padding with zero
// fractional digits or truncating as needed, without otherwise changing
// its value (spec.md §4.1 "places / lshift / rshift", extended dialect).
func Places(n Number, p int) Number {
	if p < 0 {
		p = 0
	}
	switch {
	case n.scale == p:
		return n
	case n.scale < p:
		return Number{mag: shiftLimbsLeft(n.mag, p-n.scale), scale: p, neg: n.neg}.normalize()
	default:
		return truncateScale(n, p)
	}
}

// LShift returns n * 10^p, moving the decimal point p places to the
// right exactly (spec.md §4.1).
func LShift(n Number, p int) Number {
	if p < 0 {
		return RShift(n, -p)
	}
	if n.scale >= p {
		return Number{mag: n.mag, scale: n.scale - p, neg: n.neg}.normalize()
	}
	return Number{mag: shiftLimbsLeft(n.mag, p-n.scale), scale: 0, neg: n.neg}.normalize()
}

// RShift returns n / 10^p, moving the decimal point p places to the left
// exactly (spec.md §4.1).
func RShift(n Number, p int) Number {
	if p < 0 {
		return LShift(n, -p)
	}
	return Number{mag: n.mag, scale: n.scale + p, neg: n.neg}.normalize()
}
