// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Pow returns a^b, requiring b to be an integer (spec.md §4.1 Integer
// power): it fails with ErrNonInteger if b.Scale() > 0. For negative b it
// computes a^|b| and then inverts at declaredScale plus guard digits.
//
// Open question (spec.md §9a), pinned down here: the result scale for a
// negative exponent is exactly declaredScale (never less), and for a
// non-negative exponent it is |b|·scale(a) capped the same way
// Mul caps a two-factor product: min(raw, max(scale(a), declaredScale)).
func Pow(a, b Number, declaredScale int) (Number, error) {
	if b.scale != 0 {
		return Zero, ErrNonInteger
	}
	if b.IsZero() {
		return One, nil
	}
	if a.IsZero() {
		if b.neg {
			return Zero, ErrDivideByZero
		}
		return Zero, nil
	}

	raw := powIntExact(a, b.mag)

	if b.neg {
		extra := declaredScale + limbWidth(raw.mag) + limbDigits
		inv, err := Div(One, raw, extra)
		if err != nil {
			return Zero, err
		}
		return truncateScale(inv, declaredScale), nil
	}

	cap := maxInt(a.scale, declaredScale)
	if cap > raw.scale {
		cap = raw.scale
	}
	return truncateScale(raw, cap), nil
}

// powIntExact computes a^n for a non-negative integer magnitude n (given
// as its little-endian base-limbBase limb encoding) via binary
// exponentiation with no intermediate truncation.
func powIntExact(a Number, n []uint32) Number {
	result := One
	base := a
	mag := append([]uint32(nil), n...)
	for len(mag) > 0 {
		var bit uint32
		mag, bit = divSmall(mag, 2)
		if bit == 1 {
			result = mulExact(result, base)
		}
		if len(mag) == 0 {
			break
		}
		base = mulExact(base, base)
	}
	return result
}

// truncateScale truncates n to exactly `scale` fractional digits, never
// rounding. It is a no-op if n already has scale <= the target.
func truncateScale(n Number, scale int) Number {
	if scale < 0 {
		scale = 0
	}
	if n.scale <= scale {
		return n
	}
	mag, _ := shiftLimbsRight(n.mag, n.scale-scale)
	return Number{mag: mag, scale: scale, neg: n.neg}.normalize()
}

// ModExp returns (a^b) mod c, requiring a, b, c to all be integers
// (spec.md §4.1 Modular exponentiation). It scans b in base limbBase
// from the most significant limb, squaring and reducing modulo c after
// each step, so memory use never grows proportionally to |b| (spec.md §8
// property 6).
func ModExp(a, b, c Number) (Number, error) {
	if a.scale != 0 || b.scale != 0 || c.scale != 0 {
		return Zero, ErrNonInteger
	}
	if c.IsZero() {
		return Zero, ErrDivideByZero
	}
	if b.neg {
		return Zero, ErrNonInteger
	}

	base, err := Mod(a, c)
	if err != nil {
		return Zero, err
	}
	result := One
	mag := append([]uint32(nil), b.mag...)
	for len(mag) > 0 {
		var bit uint32
		mag, bit = divSmall(mag, 2)
		if bit == 1 {
			result, err = Mod(mulExact(result, base), c)
			if err != nil {
				return Zero, err
			}
		}
		if len(mag) == 0 {
			break
		}
		base, err = Mod(mulExact(base, base), c)
		if err != nil {
			return Zero, err
		}
	}
	return result, nil
}
