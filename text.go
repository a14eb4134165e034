// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"github.com/antheory/bcgo/decimal"
)

// NumParse parses str in the given base into a fresh handle (spec.md §6
// "num_parse(str, base) → H"), at the active context's scale.
func NumParse(str string, base int) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, _, err := decimal.Parse(str, base, c.scale)
	if err != nil {
		return 0, err
	}
	return c.alloc(n), nil
}

// NumParseErr parses str into dst without allocating a fresh handle
// (spec.md §6 "_err" family).
func NumParseErr(dst Handle, str string, base int) error {
	c, err := current()
	if err != nil {
		return err
	}
	n, _, err := decimal.Parse(str, base, c.scale)
	if err != nil {
		return err
	}
	return c.set(dst, n)
}

// NumString renders h in the given base without consuming it (spec.md
// §6 "num_string(H, base) → string"). Output is canonical: no redundant
// zeros, no leading '+', exactly one '.' when scale > 0 (spec.md §6
// "Bit-exact guarantees").
func NumString(h Handle, base int) (string, error) {
	c, err := current()
	if err != nil {
		return "", err
	}
	n, err := c.lookup(h)
	if err != nil {
		return "", err
	}
	return n.Print(base), nil
}

// NumStringErr is identical to NumString; it exists only for ABI parity
// with the "_err" naming convention, since rendering a Number to a
// string never mutates the arena and has no destination handle to write
// into.
func NumStringErr(h Handle, base int) (string, error) {
	return NumString(h, base)
}
