// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Sqrt returns the square root of a, truncated to scale fractional
// digits, via Newton's method x ← (x + a/x)/2 (spec.md §4.1 Square
// root). It fails with ErrNegativeSqrt if a is negative; sqrt(0) is 0.
func Sqrt(a Number, scale int) (Number, error) {
	if a.neg {
		return Zero, ErrNegativeSqrt
	}
	if a.IsZero() {
		return Zero, nil
	}

	guardScale := scale + 2
	tol := smallestAtScale(scale) // 10^-(scale+1)

	x := initialSqrtGuess(a)
	for {
		recip, err := Div(a, x, guardScale)
		if err != nil {
			return Zero, err
		}
		sum := Add(x, recip)
		next, err := Div(sum, Number{mag: []uint32{2}}, guardScale)
		if err != nil {
			return Zero, err
		}
		diff := Sub(x, next)
		if diff.neg {
			diff = diff.negated()
		}
		x = next
		if Cmp(diff, tol) <= 0 {
			break
		}
	}
	return truncateScale(x, scale), nil
}

// initialSqrtGuess returns the smallest power of 10 strictly greater than
// sqrt(a), chosen by halving a's integer-part digit count (spec.md §4.1:
// "starting from the smallest power of 10 greater than √a by digit
// count").
func initialSqrtGuess(a Number) Number {
	intMag, _ := shiftLimbsRight(a.mag, a.scale)
	digits := limbWidth(intMag)
	if digits == 0 {
		digits = 1
	}
	guessDigits := digits/2 + 1
	mag := []uint32{1}
	mag = shiftLimbsLeft(mag, guessDigits)
	return Number{mag: mag}
}

// smallestAtScale returns 10^-(scale+1), held as the digit 1 at scale+1
// fractional digits; Sqrt uses it as its convergence tolerance.
func smallestAtScale(scale int) Number {
	if scale < 0 {
		scale = 0
	}
	return Number{mag: []uint32{1}, scale: scale + 1}
}
