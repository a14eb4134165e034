// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Mul returns a*b, truncated to declaredScale following spec.md §4.1:
// scale(a*b) = min(scale(a)+scale(b), max(scale(a), scale(b), declaredScale)).
// The raw product (scale(a)+scale(b) digits) dispatches to Karatsuba once
// both operands are long enough (decimal.mulLimbs); this is the one place
// the bytecode VM and the library façade both reach for multiplication.
func Mul(a, b Number, declaredScale int) Number {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	rawScale := a.scale + b.scale
	mag := mulLimbs(a.mag, b.mag)
	finalScale := maxInt(a.scale, maxInt(b.scale, declaredScale))
	if finalScale > rawScale {
		finalScale = rawScale
	}
	if finalScale < rawScale {
		mag, _ = shiftLimbsRight(mag, rawScale-finalScale)
	}
	return Number{mag: mag, scale: finalScale, neg: a.neg != b.neg}.normalize()
}

// mulExact returns a*b with no truncation at all (raw scale(a)+scale(b)
// digits kept); used internally by Pow's intermediate squarings, which
// must not lose precision before the final cap is applied.
func mulExact(a, b Number) Number {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	return Number{mag: mulLimbs(a.mag, b.mag), scale: a.scale + b.scale, neg: a.neg != b.neg}.normalize()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
