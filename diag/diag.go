// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag is the error/diagnostic catalogue of spec.md §4.7: a
// stable, ordered enumeration of every fault kind the calculator and the
// library façade can report, plus the three-tier error model of §7.
// Grounded in the teacher's own value.Error/value.Errorf
// (robpike-ivy/value/value.go) and run.Run's panic/recover dispatch
// (robpike-ivy/run/run.go), generalized from ivy's single Error string
// into a typed catalogue.
package diag

import "fmt"

// Kind identifies one entry of the diagnostic catalogue. The values form
// a stable ordered enumeration (spec.md §6 "Errors are reported as
// values from a stable ordered enumeration"); never renumber an existing
// Kind, only append.
type Kind int

const (
	// Math faults (tier 1, spec.md §7).
	KindNegative Kind = iota
	KindNonInteger
	KindOverflow
	KindDivideByZero
	KindNegativeSqrt
	KindInvalidString
	KindInvalidTruncate

	// Parse faults (tier 2).
	KindInvalidToken
	KindInvalidExpression
	KindInvalidPrint
	KindInvalidFunction
	KindInvalidAssignment
	KindMissingAuto
	KindLimitsReached
	KindQuit
	KindEOFInExpression
	KindDuplicateLocal
	KindMismatchedFunction
	KindUnterminatedString
	KindUnterminatedComment

	// Exec faults (tier 3, recoverable in the REPL).
	KindFile
	KindMismatchedParams
	KindUndefinedFunc
	KindUndefinedVar
	KindUndefinedArray
	KindInvalidScale
	KindInvalidIbase
	KindInvalidObase
	KindInvalidStatement
	KindInvalidExpr
	KindInvalidStringOp
	KindInvalidName
	KindInvalidLValue
	KindInvalidReturn
	KindInvalidLabel
	KindInvalidType
	KindInvalidStack
	KindStringTooLong
	KindArrayTooLong
	KindRecursiveRead
	KindPrintError
	KindHalt

	// IO / alloc / signal faults (tier 3, fatal outside the library).
	KindIO
	KindAlloc
	KindInvalidContext
	KindInterrupted

	// POSIX warnings (never fatal).
	KindPosixNameLen
	KindPosixScriptComment
	KindPosixInvalidKeyword
	KindPosixDotLast
	KindPosixReturnParens
	KindPosixBoolOps
	KindPosixRelOutside
	KindPosixMultipleRel
	KindPosixMissingForInit
	KindPosixMissingForCond
	KindPosixMissingForUpdate
	KindPosixFuncHeaderLeftBrace
)

// messages is the catalogue's human strings, indexed by Kind. It is the
// canonical enumeration named in spec.md §4.7.
var messages = map[Kind]string{
	KindNegative:            "negative number",
	KindNonInteger:          "non-integer number",
	KindOverflow:            "number too large",
	KindDivideByZero:        "divide by zero",
	KindNegativeSqrt:        "square root of a negative number",
	KindInvalidString:       "invalid number syntax",
	KindInvalidTruncate:     "invalid truncation",
	KindInvalidToken:        "invalid token",
	KindInvalidExpression:   "invalid expression",
	KindInvalidPrint:        "invalid print statement",
	KindInvalidFunction:     "invalid function definition",
	KindInvalidAssignment:   "invalid assignment",
	KindMissingAuto:         "variable used before auto declaration",
	KindLimitsReached:       "program limits reached",
	KindQuit:                "quit",
	KindEOFInExpression:     "end of file in expression",
	KindDuplicateLocal:      "duplicate local variable",
	KindMismatchedFunction:  "mismatched function definition",
	KindUnterminatedString:  "unterminated string",
	KindUnterminatedComment: "unterminated comment",
	KindFile:                "cannot open file",
	KindMismatchedParams:    "wrong number of arguments",
	KindUndefinedFunc:       "undefined function",
	KindUndefinedVar:        "undefined variable",
	KindUndefinedArray:      "undefined array",
	KindInvalidScale:        "scale out of range",
	KindInvalidIbase:        "ibase out of range",
	KindInvalidObase:        "obase out of range",
	KindInvalidStatement:    "invalid statement",
	KindInvalidExpr:         "invalid expression",
	KindInvalidStringOp:     "invalid operation on a string value",
	KindInvalidName:         "invalid name",
	KindInvalidLValue:       "invalid assignment target",
	KindInvalidReturn:       "invalid return statement",
	KindInvalidLabel:        "invalid label",
	KindInvalidType:         "invalid type for operation",
	KindInvalidStack:        "stack error",
	KindStringTooLong:       "string too long",
	KindArrayTooLong:        "array index too large",
	KindRecursiveRead:       "read() cannot be called recursively",
	KindPrintError:          "error while printing",
	KindHalt:                "halt",
	KindIO:                  "I/O error",
	KindAlloc:               "out of memory",
	KindInvalidContext:      "no active context",
	KindInterrupted:         "interrupted",

	KindPosixNameLen:             "names must be one character under POSIX mode",
	KindPosixScriptComment:       "'#' comments are a non-POSIX extension",
	KindPosixInvalidKeyword:      "keyword is a non-POSIX extension",
	KindPosixDotLast:             "'.' for the last printed value is a non-POSIX extension",
	KindPosixReturnParens:        "'return' expression should be parenthesized under POSIX mode",
	KindPosixBoolOps:             "'&&'/'||' are a non-POSIX extension",
	KindPosixRelOutside:          "relational operator used outside a condition is a non-POSIX extension",
	KindPosixMultipleRel:         "multiple relational operators is a non-POSIX extension",
	KindPosixMissingForInit:      "'for' with an empty initializer is a non-POSIX extension",
	KindPosixMissingForCond:      "'for' with an empty condition is a non-POSIX extension",
	KindPosixMissingForUpdate:    "'for' with an empty update is a non-POSIX extension",
	KindPosixFuncHeaderLeftBrace: "function header brace placement is a non-POSIX extension",
}

// String returns the catalogue's human message for k.
func (k Kind) String() string {
	if s, ok := messages[k]; ok {
		return s
	}
	return fmt.Sprintf("diag.Kind(%d)", int(k))
}

// IsPosixWarning reports whether k is one of the POSIX-warning kinds,
// which never abort execution (spec.md §7).
func (k Kind) IsPosixWarning() bool {
	return k >= KindPosixNameLen
}

// IsMath reports whether k is one of the math-fault kinds (tier 1).
func (k Kind) IsMath() bool {
	return k <= KindInvalidTruncate
}

// Error is the tier-1/tier-2 diagnostic type: a math or parse fault with
// source position, implementing the standard error interface so it
// composes with errors.Is/errors.As and with panic/recover the way the
// teacher's value.Error does (robpike-ivy/value/value.go).
type Error struct {
	Kind Kind
	File string
	Line int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Kind)
}

// Errorf builds an *Error for kind k with a formatted detail message.
func Errorf(k Kind, file string, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: k, File: file, Line: line, Detail: fmt.Sprintf(format, args...)}
}

// Fault is the tier-3 diagnostic type (spec.md §7): runtime/IO/alloc/
// signal faults that unwind to the outermost entry point via panic and a
// single recover, exactly mirroring run.Run's deferred recover
// (robpike-ivy/run/run.go) generalized to the whole fault taxonomy
// instead of just value.Error.
type Fault struct {
	Kind   Kind
	Detail string
}

func (f *Fault) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
	}
	return f.Kind.String()
}

// Raise panics with a *Fault of the given kind, to be caught by the one
// recover at the library/VM boundary.
func Raise(k Kind, format string, args ...interface{}) {
	panic(&Fault{Kind: k, Detail: fmt.Sprintf(format, args...)})
}

// Recover recovers a *Fault (and nothing else) from a deferred call,
// assigning it to *out and reporting whether one was caught. Any other
// panic value is re-panicked, matching run.Run's behavior of only
// catching its own error types.
func Recover(out **Fault) bool {
	r := recover()
	if r == nil {
		return false
	}
	f, ok := r.(*Fault)
	if !ok {
		panic(r)
	}
	*out = f
	return true
}

// Warning is a POSIX-mode diagnostic: never fatal, just counted and
// routed through the diagnostic sink (spec.md §4.3, §4.7).
type Warning struct {
	Kind Kind
	File string
	Line int
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: warning: %s", w.File, w.Line, w.Kind)
}

// Sink receives POSIX warnings as they are produced; program.Program's
// default sink writes them to stderr and increments a counter, but tests
// and the library façade can substitute their own.
type Sink interface {
	Warn(w Warning)
}

// DiscardSink implements Sink by dropping every warning; used by the
// library façade, which has no REPL to print to (spec.md §4.6).
type DiscardSink struct{}

func (DiscardSink) Warn(Warning) {}

// CountingSink counts warnings without printing them.
type CountingSink struct {
	Count int
}

func (c *CountingSink) Warn(Warning) {
	c.Count++
}
