// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Parse reads a signed decimal literal in the given input base (spec.md
// §4.1 Parse): sign? digit+ ('.' digit+)?. Digit letters 'A'..'Z' (and
// their lowercase forms) always denote 10..35 regardless of ibase; a
// digit whose value is >= ibase is accepted (bc historically tolerates
// this) but reported via the second return value so the caller can route
// a POSIX warning (spec.md §4.7 posix-warning). For ibase other than 10,
// the fractional part is computed to exactly `scale` decimal digits,
// mirroring bc's use of the current scale register when converting a
// non-decimal literal's fraction (spec.md §4.1: "computing the
// fractional part by scaling then dividing").
func Parse(s string, ibase, scale int) (n Number, outOfRangeDigit bool, err error) {
	if ibase < 2 || ibase > 36 {
		return Zero, false, ErrInvalidString
	}
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	var intDigits []int
	for i < len(s) {
		d, ok := digitValue(s[i])
		if !ok {
			break
		}
		intDigits = append(intDigits, d)
		if d >= ibase {
			outOfRangeDigit = true
		}
		i++
	}
	if len(intDigits) == 0 {
		return Zero, outOfRangeDigit, ErrInvalidString
	}

	var fracDigits []int
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) {
			d, ok := digitValue(s[i])
			if !ok {
				break
			}
			fracDigits = append(fracDigits, d)
			if d >= ibase {
				outOfRangeDigit = true
			}
			i++
		}
		if len(fracDigits) == 0 {
			return Zero, outOfRangeDigit, ErrInvalidString
		}
	}
	if i != len(s) {
		return Zero, outOfRangeDigit, ErrInvalidString
	}

	base := NewFromInt64(int64(ibase))
	intVal := Zero
	for _, d := range intDigits {
		intVal = Add(mulExact(intVal, base), NewFromInt64(int64(d)))
	}
	if len(fracDigits) == 0 {
		return intVal.withSign(neg).normalize(), outOfRangeDigit, nil
	}

	if ibase == 10 {
		fracVal := Zero
		for _, d := range fracDigits {
			fracVal = Add(mulExact(fracVal, base), NewFromInt64(int64(d)))
		}
		fracNum := Number{mag: fracVal.mag, scale: len(fracDigits)}
		return Add(intVal, fracNum).withSign(neg).normalize(), outOfRangeDigit, nil
	}

	fracVal := Zero
	for _, d := range fracDigits {
		fracVal = Add(mulExact(fracVal, base), NewFromInt64(int64(d)))
	}
	denom := powIntExact(base, NewFromInt64(int64(len(fracDigits))).mag)
	fracResult, dErr := Div(fracVal, denom, scale)
	if dErr != nil {
		return Zero, outOfRangeDigit, dErr
	}
	return Add(intVal, fracResult).withSign(neg).normalize(), outOfRangeDigit, nil
}

// digitValue reports the numeric value of a digit character in any base
// up to 36 ('0'-'9', then 'A'-'Z'/'a'-'z' for 10-35), and whether c is a
// digit character at all.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}
