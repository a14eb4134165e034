// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// This file implements the sizing-prediction helpers named in spec.md §6
// (num_addReq/mulReq/divReq/powReq/placesReq): pure functions over a
// Number's metadata that let the library façade preallocate a result's
// limb slice before calling the corresponding arithmetic routine.
// Grounded in original_source/src/library.c's bc_num_* allocation-sizing
// helpers, which compute a worst-case digit count the same way.

// AddReq predicts the number of significant digits Add(a, b) can produce.
func AddReq(a, b Number) int {
	intA := limbWidth(a.mag) - a.scale
	intB := limbWidth(b.mag) - b.scale
	intDigits := maxInt(intA, intB) + 1
	scale := maxInt(a.scale, b.scale)
	return maxInt(intDigits+scale, 1)
}

// MulReq predicts the number of significant digits Mul(a, b, scale) can
// produce.
func MulReq(a, b Number, scale int) int {
	rawScale := a.scale + b.scale
	finalScale := maxInt(a.scale, maxInt(b.scale, scale))
	if finalScale > rawScale {
		finalScale = rawScale
	}
	intDigits := (limbWidth(a.mag) - a.scale) + (limbWidth(b.mag) - b.scale)
	return maxInt(intDigits+finalScale, 1)
}

// DivReq predicts the number of significant digits Div(a, b, scale) can
// produce.
func DivReq(a Number, scale int) int {
	intDigits := limbWidth(a.mag) - a.scale
	return maxInt(intDigits+scale, 1)
}

// PowReq predicts the number of significant digits Pow(a, b, scale) can
// produce for a non-negative integer exponent b.
func PowReq(a, b Number, scale int) int {
	intDigits := limbWidth(a.mag) - a.scale
	n := toSmallInt(b)
	return maxInt(intDigits*maxInt(n, 1)+scale, 1)
}

// PlacesReq predicts the digit count Places(n, p) can produce.
func PlacesReq(n Number, p int) int {
	intDigits := limbWidth(n.mag) - n.scale
	return maxInt(intDigits+maxInt(p, 0), 1)
}

// toSmallInt best-effort converts an integer Number to an int, clamping
// rather than overflowing; used only for capacity estimates.
func toSmallInt(n Number) int {
	if len(n.mag) > 2 {
		return 1 << 30
	}
	v := 0
	for i := len(n.mag) - 1; i >= 0; i-- {
		v = v*limbBase + int(n.mag[i])
	}
	return v
}
