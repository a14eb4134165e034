// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lex turns a byte stream into a token stream with one token of
// lookahead (spec.md §4.2). It is line-oriented and byte-at-a-time,
// grounded on the teacher's scan.Scanner (robpike-ivy/scan/scan.go) but
// reworked from a goroutine/channel state machine into a plain
// pull-based Lexer, which is what a bytecode-compiling parser (spec.md
// §4.3) wants: it needs to peek one token ahead without a second
// goroutine to synchronize with.
package lex

import (
	"strings"

	"github.com/antheory/bcgo/diag"
)

// Kind identifies the kind of a Token (spec.md §3: "Token {kind, line,
// string?}").
type Kind int

const (
	EOF Kind = iota
	Newline
	Number
	Identifier
	String
	Operator  // punctuation/operator text, e.g. "+=", "<=", "++"
	Keyword   // reserved word, e.g. "if", "while", "define"
	DCCommand // a single dc command byte not also valid as a bc operator
)

// Token is one lexical token.
type Token struct {
	Kind Kind
	Line int
	Text string
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return t.Text
}

// Dialect selects the lexical rules that differ between bc and dc
// (spec.md §4.2: identifier alphabet, keyword recognition).
type Dialect int

const (
	BC Dialect = iota
	DC
)

var bcKeywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true,
	"break": true, "continue": true, "return": true, "halt": true,
	"quit": true, "print": true, "limits": true, "auto": true,
	"define": true, "length": true, "scale": true, "sqrt": true,
	"read": true, "ibase": true, "obase": true, "last": true, "void": true,
	"abs": true,
}

// Lexer scans bc/dc source text into tokens, one byte of lookahead at a
// time (spec.md §4.2).
type Lexer struct {
	file    string
	src     []byte
	pos     int
	line    int
	dialect Dialect
	warn    diag.Sink
	posix   bool
}

// New creates a Lexer over src for the given dialect. warn receives
// POSIX-mode diagnostics (spec.md §4.2's "# to end of line (POSIX
// warning)"); pass diag.DiscardSink{} to ignore them.
func New(file string, src []byte, dialect Dialect, posix bool, warn diag.Sink) *Lexer {
	return &Lexer{file: file, src: src, line: 1, dialect: dialect, posix: posix, warn: warn}
}

func (l *Lexer) cur() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) at(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) errf(kind diag.Kind, format string, args ...interface{}) {
	panic(diag.Errorf(kind, l.file, l.line, format, args...))
}

// Next returns the next token, or a Token of Kind EOF at end of input.
func (l *Lexer) Next() Token {
	l.skipHorizontalSpace()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Line: l.line}
	}
	c := l.cur()
	switch {
	case c == '\n':
		line := l.line
		l.pos++
		l.line++
		return Token{Kind: Newline, Line: line, Text: "\n"}
	case c == '#':
		l.skipLineComment()
		return l.Next()
	case c == '/' && l.at(1) == '*':
		l.skipBlockComment()
		return l.Next()
	case c == '"':
		return l.lexString()
	case isDigit(c) || (c == '.' && isDigit(l.at(1))):
		return l.lexNumber()
	case isIdentStart(c, l.dialect):
		return l.lexIdentifier()
	default:
		return l.lexOperator()
	}
}

func (l *Lexer) skipHorizontalSpace() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == '\r' {
			l.pos++
			continue
		}
		break
	}
}

func (l *Lexer) skipLineComment() {
	if l.posix {
		l.warn.Warn(diag.Warning{Kind: diag.KindPosixScriptComment, File: l.file, Line: l.line})
	}
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.line
	l.pos += 2
	for {
		if l.pos >= len(l.src) {
			l.line = start
			l.errf(diag.KindUnterminatedComment, "unterminated /* comment")
		}
		if l.cur() == '*' && l.at(1) == '/' {
			l.pos += 2
			return
		}
		if l.cur() == '\n' {
			l.line++
		}
		l.pos++
	}
}

func (l *Lexer) lexString() Token {
	line := l.line
	start := l.pos
	l.pos++ // opening quote
	for {
		if l.pos >= len(l.src) {
			l.errf(diag.KindUnterminatedString, "unterminated string literal")
		}
		c := l.src[l.pos]
		if c == '"' {
			l.pos++
			break
		}
		if c == '\n' {
			l.line++
		}
		l.pos++
	}
	text := string(l.src[start+1 : l.pos-1])
	return Token{Kind: String, Line: line, Text: text}
}

// lexNumber scans a numeric literal: digit+ ('.' digit+)?, with 'A'-'F'
// also accepted as digits (spec.md §4.2); base-range validation happens
// later in decimal.Parse, which is the only place that knows ibase.
func (l *Lexer) lexNumber() Token {
	line := l.line
	start := l.pos
	for isDigit(l.cur()) || isUpperHexLetter(l.cur()) {
		l.pos++
	}
	if l.cur() == '.' {
		l.pos++
		for isDigit(l.cur()) || isUpperHexLetter(l.cur()) {
			l.pos++
		}
	}
	return Token{Kind: Number, Line: line, Text: string(l.src[start:l.pos])}
}

func (l *Lexer) lexIdentifier() Token {
	line := l.line
	start := l.pos
	l.pos++
	for isIdentCont(l.cur(), l.dialect) {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	if l.dialect == BC {
		if bcKeywords[text] {
			if l.posix && !posixKeyword[text] {
				l.warn.Warn(diag.Warning{Kind: diag.KindPosixInvalidKeyword, File: l.file, Line: line})
			}
			return Token{Kind: Keyword, Line: line, Text: text}
		}
		if l.posix && len(text) > 1 {
			l.warn.Warn(diag.Warning{Kind: diag.KindPosixNameLen, File: l.file, Line: line})
		}
	}
	return Token{Kind: Identifier, Line: line, Text: text}
}

var posixKeyword = map[string]bool{
	"if": true, "else": true, "while": true, "for": true, "break": true,
	"continue": true, "return": true, "define": true, "auto": true,
	"length": true, "scale": true, "sqrt": true, "quit": true, "print": true,
	"read": true, "ibase": true, "obase": true,
}

// multiCharOperators lists every operator lexed as more than one byte,
// longest first so the greedy match in lexOperator is correct.
var multiCharOperators = []string{
	"<<=", ">>=",
	"+=", "-=", "*=", "/=", "%=", "^=",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--", "**",
}

func (l *Lexer) lexOperator() Token {
	line := l.line
	rest := l.src[l.pos:]
	for _, op := range multiCharOperators {
		if strings.HasPrefix(string(rest), op) {
			l.pos += len(op)
			return Token{Kind: Operator, Line: line, Text: op}
		}
	}
	c := l.cur()
	l.pos++
	if l.dialect == DC && strings.IndexByte(dcSingleByteCommands, c) >= 0 {
		return Token{Kind: DCCommand, Line: line, Text: string(c)}
	}
	return Token{Kind: Operator, Line: line, Text: string(c)}
}

// dcSingleByteCommands enumerates dc's one-byte stack commands that are
// not also valid bc operator characters on their own (spec.md §4.3 "dc:
// stack-based with single-character commands").
const dcSingleByteCommands = "cdfpPqQxXzZnNaA?:;lLsSk"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpperHexLetter(c byte) bool { return c >= 'A' && c <= 'F' }

func isIdentStart(c byte, d Dialect) bool {
	if d == DC {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
	}
	return c >= 'a' && c <= 'z'
}

func isIdentCont(c byte, d Dialect) bool {
	if d == DC {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
	}
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}
