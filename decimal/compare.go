// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Cmp compares a and b and returns -1, 0, or +1, following spec.md §4.1:
// compare signs first; if equal, align scales (the wider integer part
// wins; otherwise lex-compare limbs from the most significant down) and
// compare magnitudes. Negative zero compares equal to zero (Number never
// stores one, so this falls out naturally).
func Cmp(a, b Number) int {
	if a.neg != b.neg {
		if a.IsZero() && b.IsZero() {
			return 0
		}
		if a.neg {
			return -1
		}
		return 1
	}
	mag := cmpMagnitude(a, b)
	if a.neg {
		return -mag
	}
	return mag
}

// cmpMagnitude compares |a| and |b|, ignoring sign.
func cmpMagnitude(a, b Number) int {
	am, bm := alignScale(a, b)
	return cmpLimbs(am, bm)
}

// alignScale scales up the operand with the smaller declared scale so
// both magnitudes are directly comparable/addable at a common scale.
func alignScale(a, b Number) (am, bm []uint32) {
	switch {
	case a.scale == b.scale:
		return a.mag, b.mag
	case a.scale < b.scale:
		return shiftLimbsLeft(a.mag, b.scale-a.scale), b.mag
	default:
		return a.mag, shiftLimbsLeft(b.mag, a.scale-b.scale)
	}
}

// Equal reports whether a and b compare equal.
func Equal(a, b Number) bool {
	return Cmp(a, b) == 0
}

// Sign returns -1, 0, or 1 according to the sign of n.
func Sign(n Number) int {
	switch {
	case n.IsZero():
		return 0
	case n.neg:
		return -1
	default:
		return 1
	}
}
