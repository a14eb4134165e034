// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
	"github.com/antheory/bcgo/lex"
	"github.com/antheory/bcgo/program"
)

// Result is what compiling a bc (or dc) source file produces: a
// top-level "main" function to run immediately, plus every named
// function it defined, ready for program.Program.Functions (spec.md
// §4.4, §4.5).
type Result struct {
	Main      *program.Function
	Functions map[string]*program.Function
}

// CompileBC compiles bc source text into bytecode (spec.md §4.3's bc
// grammar: statements, expressions, function definitions), grounded in
// shape on the teacher's parse.Parser (robpike-ivy/parse/parse.go)
// recursive-descent structure, generalized from ivy's single
// expression-per-line grammar to bc's full block-structured statement
// grammar with a precedence-climbing expression core.
func CompileBC(file string, src []byte, cfg *program.Config) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*diag.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	lx := lex.New(file, src, lex.BC, cfg.Posix, cfg.WarnSink())
	c := &bcCompiler{
		ts:    newTokenStream(tokenize(lx)),
		file:  file,
		cfg:   cfg,
		funcs: map[string]*program.Function{},
		main:  newEmitter("main"),
	}
	c.program()
	return Result{Main: c.main.fn, Functions: c.funcs}, nil
}

type loopCtx struct {
	breaks        []int // jump placeholders to patch to loop end
	continueTarget int
	isFor         bool
	forUpdatePos  int // for a for-loop, continue jumps to the update clause instead
}

type bcCompiler struct {
	ts    *tokenStream
	file  string
	cfg   *program.Config
	funcs map[string]*program.Function
	main  *emitter
	cur   *emitter // emitter currently receiving statements (main, or a function body)
	loops []*loopCtx
}

func (c *bcCompiler) e() *emitter {
	if c.cur != nil {
		return c.cur
	}
	return c.main
}

func (c *bcCompiler) tok() lex.Token { return c.ts.cur() }

func (c *bcCompiler) errf(kind diag.Kind, format string, args ...interface{}) {
	panic(diag.Errorf(kind, c.file, c.tok().Line, format, args...))
}

func (c *bcCompiler) expectOperator(text string) {
	if c.tok().Kind != lex.Operator || c.tok().Text != text {
		c.errf(diag.KindInvalidToken, "expected %q, got %q", text, c.tok().Text)
	}
	c.ts.advance()
}

func (c *bcCompiler) expectKeyword(text string) {
	if c.tok().Kind != lex.Keyword || c.tok().Text != text {
		c.errf(diag.KindInvalidToken, "expected %q, got %q", text, c.tok().Text)
	}
	c.ts.advance()
}

// program compiles the whole file as a sequence of top-level statements
// and function definitions (spec.md §4.4: a bc file is a list of
// statements and "define" declarations interleaved).
func (c *bcCompiler) program() {
	c.prescanFunctions()
	c.ts.skipNewlines()
	for !c.ts.atEOF() {
		if c.tok().Kind == lex.Keyword && c.tok().Text == "define" {
			c.defineFunction()
		} else {
			c.statement()
		}
		c.ts.skipNewlines()
	}
}

// prescanFunctions walks a throwaway cursor over the same token slice
// registering every function's name, params and void-ness in c.funcs
// before any statement is compiled, so a call site that textually
// precedes a "define" (always true for mutual recursion, and possible
// for a plain forward reference within another function body) still
// resolves array-vs-scalar argument compilation correctly.
func (c *bcCompiler) prescanFunctions() {
	ts := newTokenStream(c.ts.toks)
	for !ts.atEOF() {
		if ts.cur().Kind == lex.Keyword && ts.cur().Text == "define" {
			ts.advance()
			void := false
			if ts.cur().Kind == lex.Keyword && ts.cur().Text == "void" {
				void = true
				ts.advance()
			}
			if ts.cur().Kind != lex.Identifier {
				ts.advance()
				continue
			}
			name := ts.cur().Text
			ts.advance()
			params := parseParamList(ts)
			fn := &program.Function{Name: name, Params: params, Void: void}
			c.funcs[name] = fn
			skipBracedBlock(ts)
			continue
		}
		ts.advance()
	}
}

// parseParamList consumes "(" name["[]"] ("," name["[]"])* ")" from ts,
// shared between the header prescan and the real compile pass.
func parseParamList(ts *tokenStream) []program.Param {
	if !(ts.cur().Kind == lex.Operator && ts.cur().Text == "(") {
		return nil
	}
	ts.advance()
	var params []program.Param
	for !(ts.cur().Kind == lex.Operator && ts.cur().Text == ")") {
		if ts.cur().Kind != lex.Identifier {
			ts.advance()
			continue
		}
		p := program.Param{Name: ts.cur().Text}
		ts.advance()
		if ts.cur().Kind == lex.Operator && ts.cur().Text == "[" {
			ts.advance()
			if ts.cur().Kind == lex.Operator && ts.cur().Text == "]" {
				ts.advance()
			}
			p.IsArray = true
		}
		params = append(params, p)
		if ts.cur().Kind == lex.Operator && ts.cur().Text == "," {
			ts.advance()
		}
	}
	if ts.cur().Kind == lex.Operator && ts.cur().Text == ")" {
		ts.advance()
	}
	return params
}

// skipBracedBlock consumes tokens up to and including the "}" matching
// the next "{", used by prescanFunctions to skip a function body whose
// contents it doesn't need to look inside.
func skipBracedBlock(ts *tokenStream) {
	ts.skipNewlines()
	if !(ts.cur().Kind == lex.Operator && ts.cur().Text == "{") {
		return
	}
	depth := 0
	for !ts.atEOF() {
		t := ts.cur()
		if t.Kind == lex.Operator && t.Text == "{" {
			depth++
		}
		if t.Kind == lex.Operator && t.Text == "}" {
			depth--
			ts.advance()
			if depth == 0 {
				return
			}
			continue
		}
		ts.advance()
	}
}

// defineFunction compiles "define [void] name(params) { autos; stmts }"
// (spec.md §4.4, supplemented with the "void" keyword from
// original_source).
func (c *bcCompiler) defineFunction() {
	c.expectKeyword("define")
	void := false
	if c.tok().Kind == lex.Keyword && c.tok().Text == "void" {
		void = true
		c.ts.advance()
	}
	if c.tok().Kind != lex.Identifier {
		c.errf(diag.KindInvalidFunction, "expected function name")
	}
	name := c.tok().Text
	c.ts.advance()
	params := parseParamList(c.ts)
	c.ts.skipNewlines()
	c.expectOperator("{")
	c.ts.skipNewlines()

	prevEmit, prevLoops := c.cur, c.loops
	fe := newEmitter(name)
	fe.fn.Params = params
	fe.fn.Void = void
	c.cur = fe
	c.loops = nil

	if c.tok().Kind == lex.Keyword && c.tok().Text == "auto" {
		c.ts.advance()
		for {
			if c.tok().Kind != lex.Identifier {
				c.errf(diag.KindMissingAuto, "expected variable name in auto list")
			}
			a := program.Param{Name: c.tok().Text}
			c.ts.advance()
			if c.tok().Kind == lex.Operator && c.tok().Text == "[" {
				c.ts.advance()
				c.expectOperator("]")
				a.IsArray = true
			}
			fe.fn.Autos = append(fe.fn.Autos, a)
			if c.tok().Kind == lex.Operator && c.tok().Text == "," {
				c.ts.advance()
				continue
			}
			break
		}
		c.statementTerminator()
		c.ts.skipNewlines()
	}

	for !(c.tok().Kind == lex.Operator && c.tok().Text == "}") {
		c.statement()
		c.ts.skipNewlines()
	}
	c.expectOperator("}")
	if !void {
		fe.pushConst(zeroConst)
		fe.op(program.OpReturn)
	} else {
		fe.op(program.OpReturnVoid)
	}

	c.funcs[name] = fe.fn
	c.cur, c.loops = prevEmit, prevLoops
}

func (c *bcCompiler) statementTerminator() {
	if c.tok().Kind == lex.Newline || (c.tok().Kind == lex.Operator && c.tok().Text == ";") {
		c.ts.advance()
		return
	}
	if c.tok().Kind == lex.EOF || (c.tok().Kind == lex.Operator && c.tok().Text == "}") {
		return
	}
	c.errf(diag.KindInvalidStatement, "expected end of statement, got %q", c.tok().Text)
}

// statement compiles one bc statement (spec.md §4.4).
func (c *bcCompiler) statement() {
	t := c.tok()
	switch {
	case t.Kind == lex.Operator && t.Text == "{":
		c.ts.advance()
		c.ts.skipNewlines()
		for !(c.tok().Kind == lex.Operator && c.tok().Text == "}") {
			c.statement()
			c.ts.skipNewlines()
		}
		c.expectOperator("}")
	case t.Kind == lex.Operator && (t.Text == ";" || t.Text == ""):
		c.ts.advance()
	case t.Kind == lex.Keyword && t.Text == "if":
		c.ifStatement()
	case t.Kind == lex.Keyword && t.Text == "while":
		c.whileStatement()
	case t.Kind == lex.Keyword && t.Text == "for":
		c.forStatement()
	case t.Kind == lex.Keyword && t.Text == "break":
		c.ts.advance()
		c.breakStatement()
	case t.Kind == lex.Keyword && t.Text == "continue":
		c.ts.advance()
		c.continueStatement()
	case t.Kind == lex.Keyword && t.Text == "return":
		c.ts.advance()
		c.returnStatement()
	case t.Kind == lex.Keyword && t.Text == "halt":
		c.ts.advance()
		c.e().op(program.OpHalt)
		c.statementTerminator()
	case t.Kind == lex.Keyword && t.Text == "quit":
		c.ts.advance()
		c.e().pushConst(twoConst)
		c.e().op(program.OpQuit)
		c.statementTerminator()
	case t.Kind == lex.Keyword && t.Text == "print":
		c.ts.advance()
		c.printStatement()
	case t.Kind == lex.Keyword && t.Text == "limits":
		c.ts.advance()
		c.e().op(program.OpPrintLimits)
		c.statementTerminator()
	default:
		c.expressionStatement()
	}
}

func (c *bcCompiler) ifStatement() {
	c.expectKeyword("if")
	c.expectOperator("(")
	c.expr()
	c.expectOperator(")")
	c.ts.skipNewlines()
	elseJump := c.e().jump(program.OpJumpIfZero)
	c.statement()
	end := -1
	save := c.ts.mark()
	c.ts.skipNewlines()
	if c.tok().Kind == lex.Keyword && c.tok().Text == "else" {
		c.ts.advance()
		c.ts.skipNewlines()
		end = c.e().jump(program.OpJump)
		c.e().patch(elseJump)
		c.statement()
		c.e().patch(end)
	} else {
		c.ts.reset(save)
		c.e().patch(elseJump)
	}
}

func (c *bcCompiler) whileStatement() {
	c.expectKeyword("while")
	c.expectOperator("(")
	top := c.e().pos()
	c.expr()
	c.expectOperator(")")
	c.ts.skipNewlines()
	exit := c.e().jump(program.OpJumpIfZero)
	lc := &loopCtx{continueTarget: top}
	c.loops = append(c.loops, lc)
	c.statement()
	c.e().jumpTo(program.OpJump, top)
	c.e().patch(exit)
	for _, b := range lc.breaks {
		c.e().patch(b)
	}
	c.loops = c.loops[:len(c.loops)-1]
}

func (c *bcCompiler) forStatement() {
	c.expectKeyword("for")
	c.expectOperator("(")
	if !(c.tok().Kind == lex.Operator && c.tok().Text == ";") {
		c.expressionOnlyStatement()
	}
	c.expectOperator(";")
	condPos := c.e().pos()
	hasCond := !(c.tok().Kind == lex.Operator && c.tok().Text == ";")
	if hasCond {
		c.expr()
	}
	c.expectOperator(";")
	exit := -1
	if hasCond {
		exit = c.e().jump(program.OpJumpIfZero)
	}
	bodyJump := c.e().jump(program.OpJump)
	updatePos := c.e().pos()
	if !(c.tok().Kind == lex.Operator && c.tok().Text == ")") {
		c.expressionOnlyStatement()
	}
	c.e().jumpTo(program.OpJump, condPos)
	c.expectOperator(")")
	c.ts.skipNewlines()
	c.e().patch(bodyJump)
	lc := &loopCtx{continueTarget: updatePos}
	c.loops = append(c.loops, lc)
	c.statement()
	c.e().jumpTo(program.OpJump, updatePos)
	if exit >= 0 {
		c.e().patch(exit)
	}
	for _, b := range lc.breaks {
		c.e().patch(b)
	}
	c.loops = c.loops[:len(c.loops)-1]
}

// expressionOnlyStatement compiles a bare expression for a for-loop
// clause, discarding its value (it is evaluated for side effect only).
func (c *bcCompiler) expressionOnlyStatement() {
	c.expr()
	c.e().op(program.OpPop)
}

func (c *bcCompiler) breakStatement() {
	if len(c.loops) == 0 {
		c.errf(diag.KindInvalidStatement, "break outside a loop")
	}
	lc := c.loops[len(c.loops)-1]
	at := c.e().jump(program.OpJump)
	lc.breaks = append(lc.breaks, at)
	c.statementTerminator()
}

func (c *bcCompiler) continueStatement() {
	if len(c.loops) == 0 {
		c.errf(diag.KindInvalidStatement, "continue outside a loop")
	}
	lc := c.loops[len(c.loops)-1]
	c.e().jumpTo(program.OpJump, lc.continueTarget)
	c.statementTerminator()
}

func (c *bcCompiler) returnStatement() {
	if c.cur == nil {
		c.errf(diag.KindInvalidReturn, "return outside a function")
	}
	parens := false
	if c.tok().Kind == lex.Operator && c.tok().Text == "(" {
		parens = true
	}
	if c.cfg.Posix && !parens {
		c.cfg.WarnSink().Warn(diag.Warning{Kind: diag.KindPosixReturnParens, File: c.file, Line: c.tok().Line})
	}
	if isExprStart(c.tok()) {
		c.expr()
		c.e().op(program.OpReturn)
	} else {
		c.e().op(program.OpReturnVoid)
	}
	c.statementTerminator()
}

// printStatement compiles bc's "print a, "text", b" (spec.md §4.4).
func (c *bcCompiler) printStatement() {
	for {
		if c.tok().Kind == lex.String {
			c.e().pushStr(c.tok().Text)
			c.ts.advance()
		} else {
			c.expr()
		}
		c.e().op(program.OpPrint)
		if c.tok().Kind == lex.Operator && c.tok().Text == "," {
			c.ts.advance()
			continue
		}
		break
	}
	c.statementTerminator()
}

// expressionStatement compiles a bare expression, auto-printing its
// value the way POSIX bc prints any expression statement that is not
// itself a plain assignment (spec.md §4.4: "x  # prints x", "x=1  #
// silent").
func (c *bcCompiler) expressionStatement() {
	t := c.tok()
	fn, known := c.funcs[t.Text]
	voidCall := t.Kind == lex.Identifier && known && fn.Void &&
		c.ts.peek(1).Kind == lex.Operator && c.ts.peek(1).Text == "("
	assign := c.expr()
	if voidCall {
		// a void call leaves no value to print or discard
	} else if assign {
		c.e().op(program.OpPop)
	} else {
		c.e().op(program.OpPrintExpr)
		c.e().op(program.OpPop)
	}
	c.statementTerminator()
}

var zeroConst = decimal.Zero
var twoConst = decimal.NewFromInt64(2)

func isExprStart(t lex.Token) bool {
	switch t.Kind {
	case lex.Number, lex.String, lex.Identifier:
		return true
	case lex.Keyword:
		return t.Text == "length" || t.Text == "scale" || t.Text == "sqrt" ||
			t.Text == "read" || t.Text == "ibase" || t.Text == "obase" || t.Text == "last"
	case lex.Operator:
		return t.Text == "(" || t.Text == "-" || t.Text == "!" || t.Text == "++" || t.Text == "--" || t.Text == "."
	}
	return false
}
