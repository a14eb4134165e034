// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// This file holds the magnitude-only (unsigned, sign- and scale-free)
// limb arithmetic that every exported operation builds on. All slices
// here are little-endian (index 0 is least significant) and carry no
// leading zero limb, except where a function's doc comment says
// otherwise.

// cmpLimbs compares two magnitudes, ignoring sign and scale.
func cmpLimbs(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func trimLimbs(mag []uint32) []uint32 {
	top := len(mag)
	for top > 0 && mag[top-1] == 0 {
		top--
	}
	return mag[:top]
}

// addLimbs returns a+b.
func addLimbs(a, b []uint32) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint32, n+1)
	var carry uint32
	for i := 0; i < n; i++ {
		var x, y uint32
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		s := x + y + carry
		if s >= limbBase {
			s -= limbBase
			carry = 1
		} else {
			carry = 0
		}
		out[i] = s
	}
	out[n] = carry
	return trimLimbs(out)
}

// subLimbs returns a-b, requiring a >= b.
func subLimbs(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int32
	for i := range a {
		var y int32
		if i < len(b) {
			y = int32(b[i])
		}
		d := int32(a[i]) - y - borrow
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return trimLimbs(out)
}

// mulSmall multiplies a magnitude by a scalar strictly less than limbBase.
func mulSmall(a []uint32, m uint32) []uint32 {
	if m == 0 || len(a) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i, d := range a {
		v := uint64(d)*uint64(m) + carry
		out[i] = uint32(v % limbBase)
		carry = v / limbBase
	}
	out[len(a)] = uint32(carry)
	return trimLimbs(out)
}

// divSmall divides a magnitude by a scalar strictly less than limbBase,
// returning the quotient and the remainder (also less than limbBase).
func divSmall(a []uint32, d uint32) ([]uint32, uint32) {
	if d == 0 {
		panic("decimal: division by zero")
	}
	out := make([]uint32, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem*limbBase + uint64(a[i])
		out[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trimLimbs(out), uint32(rem)
}

// pow10Small returns 10^e for 0 <= e < limbDigits as a plain uint32.
func pow10Small(e int) uint32 {
	p := uint32(1)
	for i := 0; i < e; i++ {
		p *= 10
	}
	return p
}

// shiftLimbsLeft multiplies a magnitude by 10^digits exactly, by moving
// whole limbs and, for the remaining digits < limbDigits, a small
// multiply. This is the limb-level primitive behind decimal point shifts
// (spec.md §4.1 "places / lshift / rshift").
func shiftLimbsLeft(a []uint32, digits int) []uint32 {
	if len(a) == 0 || digits <= 0 {
		return append([]uint32(nil), a...)
	}
	limbs, rem := digits/limbDigits, digits%limbDigits
	out := a
	if rem != 0 {
		out = mulSmall(out, pow10Small(rem))
	}
	if limbs > 0 {
		padded := make([]uint32, len(out)+limbs)
		copy(padded[limbs:], out)
		out = padded
	}
	return trimLimbs(out)
}

// shiftLimbsRight divides a magnitude by 10^digits, truncating toward
// zero, and also reports the discarded remainder's sign (whether any
// nonzero digit was dropped) for callers that need to round.
func shiftLimbsRight(a []uint32, digits int) (quot []uint32, dropped bool) {
	if len(a) == 0 {
		return nil, false
	}
	if digits <= 0 {
		return append([]uint32(nil), a...), false
	}
	limbs, rem := digits/limbDigits, digits%limbDigits
	if limbs >= len(a) {
		return nil, !allZero(a)
	}
	out := append([]uint32(nil), a[limbs:]...)
	dropped = !allZero(a[:limbs])
	if rem != 0 {
		var r uint32
		out, r = divSmall(out, pow10Small(rem))
		dropped = dropped || r != 0
	}
	return trimLimbs(out), dropped
}

func allZero(a []uint32) bool {
	for _, d := range a {
		if d != 0 {
			return false
		}
	}
	return true
}

// mulLimbsSchool is the O(n*m) schoolbook multiply.
func mulLimbsSchool(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b))
	for i, x := range a {
		if x == 0 {
			continue
		}
		var carry uint64
		for j, y := range b {
			v := out[i+j] + uint64(x)*uint64(y) + carry
			out[i+j] = v % limbBase
			carry = v / limbBase
		}
		k := i + len(b)
		for carry > 0 {
			v := out[k] + carry
			out[k] = v % limbBase
			carry = v / limbBase
			k++
		}
	}
	res := make([]uint32, len(out))
	for i, v := range out {
		res[i] = uint32(v)
	}
	return trimLimbs(res)
}

// karatsubaThreshold is the minimum operand length (in limbs) below which
// schoolbook multiplication is used directly (spec.md §4.1).
const karatsubaThreshold = 64

// mulLimbs multiplies two magnitudes, dispatching to Karatsuba once both
// operands are long enough to make the O(n^1.585) asymptotics pay off
// (spec.md §4.1 Multiplication).
func mulLimbs(a, b []uint32) []uint32 {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return nil
	}
	minLen := la
	if lb < minLen {
		minLen = lb
	}
	if minLen < karatsubaThreshold {
		return mulLimbsSchool(a, b)
	}
	m := la
	if lb > m {
		m = lb
	}
	m /= 2

	aLo, aHi := splitAt(a, m)
	bLo, bHi := splitAt(b, m)

	z2 := mulLimbs(aHi, bHi)
	z0 := mulLimbs(aLo, bLo)
	sumA := addLimbs(aHi, aLo)
	sumB := addLimbs(bHi, bLo)
	z1 := mulLimbs(sumA, sumB)
	z1 = subLimbs(z1, z2)
	z1 = subLimbs(z1, z0)

	result := z0
	result = addAtOffset(result, z1, m)
	result = addAtOffset(result, z2, 2*m)
	return trimLimbs(result)
}

// splitAt splits a little-endian magnitude into (low m limbs, rest).
func splitAt(a []uint32, m int) (lo, hi []uint32) {
	if m >= len(a) {
		return append([]uint32(nil), a...), nil
	}
	lo = append([]uint32(nil), a[:m]...)
	hi = append([]uint32(nil), a[m:]...)
	return
}

// addAtOffset adds b, shifted left by off limbs, into a fresh copy of a.
func addAtOffset(a, b []uint32, off int) []uint32 {
	if len(b) == 0 {
		return a
	}
	n := off + len(b)
	if len(a) > n {
		n = len(a)
	}
	shifted := make([]uint32, off+len(b))
	copy(shifted[off:], b)
	return addLimbs(a, shifted)
}

// divModLimbs performs long division in base limbBase, returning
// truncating quotient and remainder magnitudes (spec.md §4.1 Division):
// normalize the divisor so its top limb is >= limbBase/2 by scaling both
// operands by the same factor, estimate each quotient limb from the top
// two limbs of the running remainder, and correct by at most two
// subtractions.
func divModLimbs(a, b []uint32) (quot, rem []uint32) {
	if len(b) == 0 {
		panic("decimal: division by zero")
	}
	if cmpLimbs(a, b) < 0 {
		return nil, append([]uint32(nil), a...)
	}
	if len(b) == 1 {
		q, r := divSmall(a, b[0])
		if r == 0 {
			return q, nil
		}
		return q, []uint32{r}
	}

	// Normalize so the divisor's top limb is >= limbBase/2.
	norm := uint32(limbBase / (uint64(b[len(b)-1]) + 1))
	if norm == 0 {
		norm = 1
	}
	u := mulSmall(a, norm)
	v := mulSmall(b, norm)
	for len(u) < len(a)+1 {
		u = append(u, 0)
	}
	for len(v) < len(b) {
		v = append(v, 0)
	}

	n := len(v)
	m := len(u) - n
	if m < 0 {
		m = 0
	}
	q := make([]uint32, m+1)

	for j := m; j >= 0; j-- {
		var top uint64
		if j+n < len(u) {
			top = uint64(u[j+n])
		}
		num := top*limbBase + uint64(uAt(u, j+n-1))
		den := uint64(v[n-1])
		qhat := num / den
		rhat := num % den
		for qhat >= limbBase || (n >= 2 && qhat*uint64(v[n-2]) > rhat*limbBase+uint64(uAt(u, j+n-2))) {
			qhat--
			rhat += den
			if rhat >= limbBase {
				break
			}
		}
		// Multiply and subtract qhat*v from u[j:j+n+1].
		borrow := int64(0)
		carry := uint64(0)
		for i := 0; i < n; i++ {
			p := qhat*uint64(v[i]) + carry
			carry = p / limbBase
			sub := int64(uAt(u, j+i)) - int64(p%limbBase) - borrow
			if sub < 0 {
				sub += limbBase
				borrow = 1
			} else {
				borrow = 0
			}
			setAt(u, j+i, uint32(sub))
		}
		sub := int64(uAt(u, j+n)) - int64(carry) - borrow
		if sub < 0 {
			// qhat was one too large; add back v once.
			sub += limbBase
			qhat--
			c := uint64(0)
			for i := 0; i < n; i++ {
				s := uint64(uAt(u, j+i)) + uint64(v[i]) + c
				setAt(u, j+i, uint32(s%limbBase))
				c = s / limbBase
			}
			sub += int64(c)
			sub -= limbBase
		}
		setAt(u, j+n, uint32(sub))
		q[j] = uint32(qhat)
	}

	quot = trimLimbs(q)
	r, _ := divSmall(trimLimbs(u[:n]), norm)
	rem = r
	return
}

func uAt(u []uint32, i int) uint32 {
	if i < 0 || i >= len(u) {
		return 0
	}
	return u[i]
}

func setAt(u []uint32, i int, v uint32) {
	if i >= 0 && i < len(u) {
		u[i] = v
	}
}
