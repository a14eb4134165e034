// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

// Guard models a signal-deferred region (spec.md §5): "regions in which,
// should a signal fire, the handler sets the flag but does not raise it
// until the region exits." There is no real OS signal delivery here —
// Guard is the abstract contract the library façade and the VM's
// statement-boundary check both drive, the way the teacher's run.Run
// checks a debug flag and recovers from a panic at a single well-known
// point rather than polling throughout evaluation (robpike-ivy/run/run.go).
type Guard struct {
	depth   int
	pending bool
}

// NewGuard returns a Guard with no pending signal and no open region.
func NewGuard() *Guard { return &Guard{} }

// Enter opens a signal-deferred region; allocation, arena insertion,
// context push/pop, and free-list updates all run inside one (spec.md
// §5).
func (g *Guard) Enter() { g.depth++ }

// Exit closes a signal-deferred region.
func (g *Guard) Exit() {
	if g.depth > 0 {
		g.depth--
	}
}

// InRegion reports whether a signal-deferred region is currently open.
func (g *Guard) InRegion() bool { return g.depth > 0 }

// RequestSignal marks a signal pending. Safe to call from an asynchronous
// signal context (spec.md §6 "handleSignal() — callable from a signal
// context; marks pending").
func (g *Guard) RequestSignal() { g.pending = true }

// Pending reports whether a signal is waiting to be delivered at the
// next yield point.
func (g *Guard) Pending() bool { return g.pending }

// Clear resets the pending flag once the interrupt has been reported to
// the caller.
func (g *Guard) Clear() { g.pending = false }
