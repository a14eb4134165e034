// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import "github.com/antheory/bcgo/diag"

// HandleSignal marks a signal pending (spec.md §6 "handleSignal() —
// callable from a signal context; marks pending"). It is safe to call
// from an asynchronous signal handler: it only sets a flag, touching no
// arena state (spec.md §5 "Allocation, arena insertion, context push/
// pop, and handle free-list updates must all execute inside a signal-
// deferred region; pure arithmetic kernels run outside").
func HandleSignal() {
	libGuard.RequestSignal()
}

// Interrupted reports whether a signal is pending and no signal-deferred
// region is active. No bcgo entry point calls it; a host program driving
// many bcgo calls in a tight loop can poll it between them, without this
// package needing real OS signal plumbing.
func Interrupted() bool {
	if libGuard.Pending() && !libGuard.InRegion() {
		return true
	}
	return false
}

// AckInterrupt clears a pending interrupt once the caller has unwound
// and reported it (spec.md §5 "unwinds local owned resources and
// reports interrupted"), and returns the diagnostic that should be
// surfaced to the library's caller.
func AckInterrupt() error {
	if !Interrupted() {
		return nil
	}
	libGuard.Clear()
	return diag.Errorf(diag.KindInterrupted, "bcgo", 0, "interrupted")
}
