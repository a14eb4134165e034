// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "strings"

// Print renders n in the given output base (spec.md §4.1 Print). For
// obase == 10 it prints limbs directly with left/right zero padding
// against scale, omitting a redundant leading "0" before the point (so
// one-half prints ".5", matching canonical bc output). For obase != 10
// it emits the integer part by repeated division, then the fractional
// part by repeated multiplication for Scale() iterations. Digits above 9
// are emitted as space-separated decimal groups once obase > 16; up to
// and including base 16 it uses the classic single hex-style character
// per digit. Print never mutates n (it works on copies throughout).
func (n Number) Print(obase int) string {
	if obase == 10 {
		return n.printBase10()
	}
	return n.printOtherBase(obase)
}

func (n Number) printBase10() string {
	var b strings.Builder
	if n.neg {
		b.WriteByte('-')
	}
	digits := magDecimalString(n.mag)
	for len(digits) < n.scale+1 {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-n.scale]
	fracPart := digits[len(digits)-n.scale:]
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" && n.scale == 0 {
		intPart = "0"
	}
	b.WriteString(intPart)
	if n.scale > 0 {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// magDecimalString renders a little-endian base-limbBase magnitude as a
// plain decimal digit string with no leading zeros (empty string for a
// zero magnitude).
func magDecimalString(mag []uint32) string {
	if len(mag) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(mag) - 1; i >= 0; i-- {
		if i == len(mag)-1 {
			b.WriteString(itoa(mag[i]))
		} else {
			s := itoa(mag[i])
			for len(s) < limbDigits {
				s = "0" + s
			}
			b.WriteString(s)
		}
	}
	return b.String()
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (n Number) printOtherBase(obase int) string {
	var b strings.Builder
	if n.neg {
		b.WriteByte('-')
	}

	intMag, _ := shiftLimbsRight(n.mag, n.scale)
	intDigits := digitsInBase(intMag, obase)
	if len(intDigits) == 0 {
		intDigits = []uint32{0}
	}
	writeDigitGroup(&b, intDigits, obase)

	if n.scale > 0 {
		b.WriteByte('.')
		numer, _ := shiftLimbsRight(n.mag, 0) // full magnitude
		denom := shiftLimbsLeft([]uint32{1}, n.scale)
		// numer currently holds the whole value*10^scale; reduce it to
		// just the fractional remainder against denom.
		_, fracRemainder := divModLimbs(numer, denom)
		fracDigits := make([]uint32, n.scale)
		rem := fracRemainder
		for i := 0; i < n.scale; i++ {
			rem = mulSmall(rem, uint32(obase))
			var q []uint32
			q, rem = divModLimbs(rem, denom)
			var d uint32
			if len(q) > 0 {
				d = q[0]
			}
			fracDigits[i] = d
		}
		writeDigitGroup(&b, fracDigits, obase)
	}
	return b.String()
}

// digitsInBase converts a little-endian base-limbBase magnitude into a
// most-significant-first slice of base-obase digits via repeated
// division (spec.md §4.1 Print).
func digitsInBase(mag []uint32, obase int) []uint32 {
	var digits []uint32
	cur := append([]uint32(nil), mag...)
	for len(cur) > 0 {
		var r uint32
		cur, r = divSmall(cur, uint32(obase))
		digits = append(digits, r)
	}
	// reverse to most-significant-first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

func writeDigitGroup(b *strings.Builder, digits []uint32, obase int) {
	if obase <= 16 {
		for _, d := range digits {
			b.WriteByte(digitAlphabet[d])
		}
		return
	}
	for i, d := range digits {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(itoa(d))
	}
}
