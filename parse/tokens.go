// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "github.com/antheory/bcgo/lex"

// tokenize drains lx into a slice, including the terminal EOF token.
// Reading the whole token stream up front turns assignment-vs-expression
// disambiguation (spec.md §4.3: "a=3" is a statement, "a==3" is an
// expression) into ordinary indexed backtracking instead of a speculative
// multi-token pushback buffer on top of the pull-based Lexer.
func tokenize(lx *lex.Lexer) []lex.Token {
	var toks []lex.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == lex.EOF {
			return toks
		}
	}
}

// tokenStream is a cursor over a pre-scanned token slice with arbitrary
// lookahead and backtrack, used by the bc compiler (the dc compiler
// scans raw bytes instead).
type tokenStream struct {
	toks []lex.Token
	pos  int
}

func newTokenStream(toks []lex.Token) *tokenStream { return &tokenStream{toks: toks} }

func (s *tokenStream) cur() lex.Token { return s.toks[s.pos] }

func (s *tokenStream) peek(n int) lex.Token {
	i := s.pos + n
	if i >= len(s.toks) {
		return s.toks[len(s.toks)-1] // EOF
	}
	return s.toks[i]
}

func (s *tokenStream) advance() lex.Token {
	t := s.cur()
	if t.Kind != lex.EOF {
		s.pos++
	}
	return t
}

func (s *tokenStream) mark() int     { return s.pos }
func (s *tokenStream) reset(m int)   { s.pos = m }

func (s *tokenStream) atEOF() bool { return s.cur().Kind == lex.EOF }

// skipNewlines consumes any run of Newline tokens; bc treats newlines as
// statement separators, not significant inside expressions once a
// statement has started (spec.md §4.2).
func (s *tokenStream) skipNewlines() {
	for s.cur().Kind == lex.Newline {
		s.advance()
	}
}
