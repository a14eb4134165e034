// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "errors"

// Sentinel errors for the math faults of spec.md §4.7's "math" kind.
// The diag package wraps these with position/context information; decimal
// stays free of any dependency on diag to avoid an import cycle (decimal
// is the lowest-level package in the module).
var (
	ErrDivideByZero  = errors.New("divide by zero")
	ErrNegativeSqrt  = errors.New("square root of a negative number")
	ErrNonInteger    = errors.New("non-integer number")
	ErrInvalidString = errors.New("invalid number syntax")
)
