// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"strconv"

	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
)

// numberToInt64 converts n to a machine int64, the way vm.toIndex reads
// a decimal.Number back into a Go int for array indexing, but strict
// rather than clamping: num_bigdig must fault on a non-integer or
// out-of-range value instead of silently truncating it (spec.md §6
// "num_bigdig(H, *out) → Err").
func numberToInt64(n decimal.Number) (int64, error) {
	if n.Scale() != 0 {
		return 0, diag.Errorf(diag.KindNonInteger, "bcgo", 0, "num_bigdig: %s is not an integer", n)
	}
	v, err := strconv.ParseInt(n.Print(10), 10, 64)
	if err != nil {
		return 0, diag.Errorf(diag.KindOverflow, "bcgo", 0, "num_bigdig: %s does not fit in int64", n)
	}
	return v, nil
}
