// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

// Limits holds the four POSIX bc resource ceilings spec.md §4.5 requires
// the 'limits' statement and the library façade to report:
// BC_BASE_MAX, BC_SCALE_MAX, BC_STRING_MAX and BC_NAME_MAX, plus the
// function-call depth ceiling (ExecDepth) and the array size ceiling
// (ArrayMax, reported as BC_DIM_MAX) supplementing them.
type Limits struct {
	BaseMax   int
	ScaleMax  int
	StringMax int
	NameMax   int
	ExecDepth int
	ArrayMax  int
}

// DefaultLimits matches the teacher POSIX-bc implementation's published
// limits (original_source/bc.h), large enough not to bind realistic
// scripts while still catching runaway recursion or scale blowups.
var DefaultLimits = Limits{
	BaseMax:   16,
	ScaleMax:  1 << 20,
	StringMax: 1 << 20,
	NameMax:   1,
	ExecDepth: 1 << 16,
	ArrayMax:  1 << 24,
}
