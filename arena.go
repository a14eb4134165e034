// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
)

// alloc stores n in the arena and returns a fresh Handle, preferring a
// recycled free-list slot over growing the arena (spec.md §3 "A deleted
// handle is recycled from free_nums").
func (c *Context) alloc(n decimal.Number) Handle {
	libGuard.Enter()
	defer libGuard.Exit()
	if len(c.free) > 0 {
		i := c.free[len(c.free)-1]
		c.free = c.free[:len(c.free)-1]
		c.arena.Set(i, arenaSlot{num: n, alive: true})
		return Handle(i + 1)
	}
	i := c.arena.Push(arenaSlot{num: n, alive: true})
	return Handle(i + 1)
}

func (c *Context) index(h Handle) (int, error) {
	i := int(h) - 1
	if i < 0 || i >= c.arena.Len() {
		return 0, diag.Errorf(diag.KindInvalidContext, "bcgo", 0, "invalid handle %d", h)
	}
	return i, nil
}

// lookup returns the Number a live handle refers to.
func (c *Context) lookup(h Handle) (decimal.Number, error) {
	i, err := c.index(h)
	if err != nil {
		return decimal.Zero, err
	}
	slot := c.arena.At(i)
	if !slot.alive {
		return decimal.Zero, diag.Errorf(diag.KindInvalidContext, "bcgo", 0, "handle %d already freed", h)
	}
	return slot.num, nil
}

// release recycles h's arena slot onto the free list, zeroing it first
// (spec.md §5 "recycled slots are zeroed before reuse").
func (c *Context) release(h Handle) {
	libGuard.Enter()
	defer libGuard.Exit()
	i, err := c.index(h)
	if err != nil {
		return
	}
	if !c.arena.At(i).alive {
		return
	}
	c.arena.Set(i, arenaSlot{})
	c.free = append(c.free, i)
}

// set overwrites a live handle's value in place, used by the "Err"
// explicit-destination variants that consume nothing.
func (c *Context) set(h Handle, n decimal.Number) error {
	i, err := c.index(h)
	if err != nil {
		return err
	}
	slot := c.arena.At(i)
	if !slot.alive {
		return diag.Errorf(diag.KindInvalidContext, "bcgo", 0, "handle %d already freed", h)
	}
	c.arena.Set(i, arenaSlot{num: n, alive: true})
	return nil
}

// NumInit allocates a zero-valued Number and returns its handle (spec.md
// §6 "num_init() → H").
func NumInit() (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.alloc(decimal.Zero), nil
}

// NumInitReq is identical to NumInit in this implementation: Go's
// decimal.Number grows its limb slice on demand, so there is no
// preallocated capacity to request up front the way the historical C
// bc_num did (spec.md §6 "num_init_req(sz) → H"); sz is accepted and
// ignored for ABI parity.
func NumInitReq(sz int) (Handle, error) {
	return NumInit()
}

// NumFree recycles h (spec.md §6 "num_free(H)"). Freeing an already-free
// or unknown handle is a silent no-op, matching free(3)'s tolerance of a
// duplicate-free guard at this layer (the historical C library aborts;
// Go's garbage collector makes that defensive posture unnecessary here).
func NumFree(h Handle) {
	c := CurrentContext()
	if c == nil {
		return
	}
	c.release(h)
}

// NumCopy deep-copies src into dst without consuming src (spec.md §6
// "num_copy(dst,src) → Err").
func NumCopy(dst, src Handle) error {
	c, err := current()
	if err != nil {
		return err
	}
	if dst == src {
		return diag.Errorf(diag.KindInvalidContext, "bcgo", 0, "num_copy: dst and src must differ")
	}
	n, err := c.lookup(src)
	if err != nil {
		return err
	}
	return c.set(dst, n.Copy())
}

// NumDup returns a fresh handle holding a deep copy of src (spec.md §6
// "num_dup(src) → H").
func NumDup(src Handle) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(src)
	if err != nil {
		return 0, err
	}
	return c.alloc(n.Copy()), nil
}

// NumNeg reports whether h's value is negative (spec.md §6 "num_neg(H)
// → bool"); it does not consume h.
func NumNeg(h Handle) (bool, error) {
	c, err := current()
	if err != nil {
		return false, err
	}
	n, err := c.lookup(h)
	if err != nil {
		return false, err
	}
	return n.Neg(), nil
}

// NumScale reports h's decimal scale without consuming it.
func NumScale(h Handle) (int, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(h)
	if err != nil {
		return 0, err
	}
	return n.Scale(), nil
}

// NumLen reports h's digit count without consuming it.
func NumLen(h Handle) (int, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(h)
	if err != nil {
		return 0, err
	}
	return n.Digits(), nil
}

// NumBigDig reads h as a machine int64, erroring if it does not fit
// (spec.md §6 "num_bigdig(H, *out) → Err"). It does not consume h.
func NumBigDig(h Handle) (int64, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	n, err := c.lookup(h)
	if err != nil {
		return 0, err
	}
	return numberToInt64(n)
}

// NumBigDig2Num creates a Number from a machine int64 (spec.md §6
// "num_bigdig2num(val) → H").
func NumBigDig2Num(v int64) (Handle, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	return c.alloc(decimal.NewFromInt64(v)), nil
}
