// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"testing"

	"github.com/antheory/bcgo/decimal"
)

func withContext(t *testing.T) *Context {
	t.Helper()
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	ctx := CtxtCreate()
	if err := PushContext(ctx); err != nil {
		t.Fatalf("PushContext: %v", err)
	}
	t.Cleanup(func() {
		PopContext()
		CtxtFree(ctx)
		Free()
	})
	return ctx
}

func mustParse(t *testing.T, s string) Handle {
	t.Helper()
	h, err := NumParse(s, 10)
	if err != nil {
		t.Fatalf("NumParse(%q): %v", s, err)
	}
	return h
}

func mustString(t *testing.T, h Handle) string {
	t.Helper()
	s, err := NumString(h, 10)
	if err != nil {
		t.Fatalf("NumString: %v", err)
	}
	return s
}

func TestNoActiveContextErrors(t *testing.T) {
	if _, err := NumInit(); err == nil {
		t.Fatalf("expected an invalid-context error with no active context")
	}
}

func TestAddConsumesInputs(t *testing.T) {
	withContext(t)
	a := mustParse(t, "2")
	b := mustParse(t, "3")
	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := mustString(t, sum); got != "5" {
		t.Errorf("2+3 = %q, want 5", got)
	}
	if _, err := NumString(a, 10); err == nil {
		t.Errorf("expected handle %d to have been consumed by Add", a)
	}
}

func TestAddErrDoesNotConsume(t *testing.T) {
	withContext(t)
	a := mustParse(t, "2")
	b := mustParse(t, "3")
	dst, err := NumInit()
	if err != nil {
		t.Fatalf("NumInit: %v", err)
	}
	if err := AddErr(dst, a, b); err != nil {
		t.Fatalf("AddErr: %v", err)
	}
	if got := mustString(t, dst); got != "5" {
		t.Errorf("AddErr result = %q, want 5", got)
	}
	if got := mustString(t, a); got != "2" {
		t.Errorf("a was consumed by AddErr: got %q, want 2", got)
	}
}

func TestAddErrRejectsAliasedDestination(t *testing.T) {
	withContext(t)
	a := mustParse(t, "2")
	b := mustParse(t, "3")
	if err := AddErr(a, a, b); err == nil {
		t.Fatalf("expected an error when dst aliases a source handle")
	}
}

func TestNumFreeRecyclesHandle(t *testing.T) {
	withContext(t)
	a := mustParse(t, "1")
	NumFree(a)
	b := mustParse(t, "2")
	if a != b {
		t.Errorf("expected freed handle %d to be recycled, got %d", a, b)
	}
}

func TestNumCopyDeepCopies(t *testing.T) {
	withContext(t)
	a := mustParse(t, "7")
	dst, err := NumInit()
	if err != nil {
		t.Fatalf("NumInit: %v", err)
	}
	if err := NumCopy(dst, a); err != nil {
		t.Fatalf("NumCopy: %v", err)
	}
	if got := mustString(t, dst); got != "7" {
		t.Errorf("NumCopy result = %q, want 7", got)
	}
	if got := mustString(t, a); got != "7" {
		t.Errorf("NumCopy consumed its source: got %q, want 7", got)
	}
}

func TestDivModRoundTrip(t *testing.T) {
	withContext(t)
	a := mustParse(t, "17")
	b := mustParse(t, "5")
	q, r, err := DivMod(a, b)
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	if got := mustString(t, q); got != "3" {
		t.Errorf("17/5 quotient = %q, want 3", got)
	}
	if got := mustString(t, r); got != "2" {
		t.Errorf("17%%5 remainder = %q, want 2", got)
	}
}

func TestModExp(t *testing.T) {
	withContext(t)
	a := mustParse(t, "4")
	b := mustParse(t, "13")
	m := mustParse(t, "497")
	r, err := ModExp(a, b, m)
	if err != nil {
		t.Fatalf("ModExp: %v", err)
	}
	if got := mustString(t, r); got != "445" {
		t.Errorf("4^13 mod 497 = %q, want 445", got)
	}
}

func TestContextScaleBounds(t *testing.T) {
	ctx := withContext(t)
	if err := ctx.SetScale(-1); err == nil {
		t.Errorf("expected negative scale to be rejected")
	}
	if err := ctx.SetIbase(1); err == nil {
		t.Errorf("expected ibase 1 to be rejected")
	}
	if err := ctx.SetScale(4); err != nil {
		t.Errorf("SetScale(4): %v", err)
	}
	if ctx.Scale() != 4 {
		t.Errorf("Scale() = %d, want 4", ctx.Scale())
	}
}

func TestSizingHelpersAreNonConsuming(t *testing.T) {
	withContext(t)
	a := mustParse(t, "123")
	b := mustParse(t, "45")
	if _, err := AddReq(a, b); err != nil {
		t.Fatalf("AddReq: %v", err)
	}
	if got := mustString(t, a); got != "123" {
		t.Errorf("AddReq consumed a: got %q, want 123", got)
	}
}

func TestSignalDeferredDuringRegion(t *testing.T) {
	withContext(t)
	libGuard.Enter()
	HandleSignal()
	if Interrupted() {
		t.Fatalf("Interrupted() reported true while a signal-deferred region is still open")
	}
	libGuard.Exit()
	if !Interrupted() {
		t.Fatalf("Interrupted() should report true once the region has closed")
	}
	if err := AckInterrupt(); err == nil {
		t.Fatalf("AckInterrupt: expected an error reporting the interrupt")
	}
	if Interrupted() {
		t.Fatalf("AckInterrupt should have cleared the pending flag")
	}
}

func TestAllocReleaseRunInsideSignalDeferredRegion(t *testing.T) {
	ctx := withContext(t)
	h := ctx.alloc(decimal.Zero)
	if libGuard.InRegion() {
		t.Fatalf("alloc left the signal-deferred region open")
	}
	ctx.release(h)
	if libGuard.InRegion() {
		t.Fatalf("release left the signal-deferred region open")
	}
}

func TestSeedWithNumRoundTrips(t *testing.T) {
	withContext(t)
	seed := mustParse(t, "123456789")
	if err := NumSeedWithNum(seed); err != nil {
		t.Fatalf("NumSeedWithNum: %v", err)
	}
	if _, err := NumSeed2Num(); err != nil {
		t.Fatalf("NumSeed2Num: %v", err)
	}
}
