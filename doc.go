// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bcgo is the library-mode façade of the calculator (spec.md
// §4.6): a handle-indexed arena of decimal.Number values exposed behind
// a stable, consuming-operation ABI, so a host program can do
// arbitrary-precision decimal math without going through the bc/dc
// language at all.
//
// A Context owns an arena (built on internal/seq.Sequence, the same
// growable-slice building block program.Array uses) plus a free list of
// recycled slots. Arithmetic methods consume their Handle arguments —
// dropping them onto the free list — and return a fresh Handle, mirroring
// the historical C library's ownership-transferring calling convention
// (spec.md §6 "every operation with inputs consumes those inputs").
// Parallel "Err"-suffixed methods write into a caller-supplied
// destination Handle instead, consuming nothing, for callers who want to
// retain their operands.
//
// Grounded on the teacher's exec.Context (robpike-ivy/exec/context.go)
// for the push/pop context-stack idiom, and on run.Run's single
// recover-and-classify boundary (robpike-ivy/run/run.go) for how a fatal
// fault is turned into a reported error rather than a process crash.
package bcgo
