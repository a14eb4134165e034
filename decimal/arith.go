// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Add returns a+b, aligning declared scales first (spec.md §4.1
// Addition / Subtraction). Differing signs dispatch to magnitude
// subtraction, matching bc's add-vs-subtract rule.
func Add(a, b Number) Number {
	scale := a.scale
	if b.scale > scale {
		scale = b.scale
	}
	am, bm := alignScale(a, b)
	if a.neg == b.neg {
		return Number{mag: addLimbs(am, bm), scale: scale, neg: a.neg}.normalize()
	}
	if cmpLimbs(am, bm) >= 0 {
		return Number{mag: subLimbs(am, bm), scale: scale, neg: a.neg}.normalize()
	}
	return Number{mag: subLimbs(bm, am), scale: scale, neg: b.neg}.normalize()
}

// Sub returns a-b.
func Sub(a, b Number) Number {
	return Add(a, b.negated())
}
