// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package codegen

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/consensys/go-clanger/pkg/c/ast"
	"github.com/consensys/go-clanger/pkg/x86/asm"
	"github.com/consensys/go-clanger/pkg/x86/asm/asmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Expressions
// ============================================================================

func TestGenerator_Constant(t *testing.T) {
	checkExpression(t, constant(9001), "movl  $9001, %eax")
}

func TestGenerator_Negation(t *testing.T) {
	// -3
	checkExpression(t, neg(constant(3)), `
		movl    $3, %eax
		neg     %eax
	`)
}

func TestGenerator_BitwiseComplement(t *testing.T) {
	// ~7
	checkExpression(t, complement(constant(7)), `
		movl    $7, %eax
		not     %eax
	`)
}

func TestGenerator_LogicalNegation(t *testing.T) {
	// !1
	checkExpression(t, not(constant(1)), `
		movl    $1, %eax
		cmpl    $0, %eax
		movl    $0, %eax
		sete    %al
	`)
}

func TestGenerator_NestedNegation(t *testing.T) {
	// --842 is never simplified away
	checkExpression(t, neg(neg(constant(842))), `
		movl    $842, %eax
		neg     %eax
		neg     %eax
	`)
}

func TestGenerator_NestedLogicalNegation(t *testing.T) {
	// !!1337
	checkExpression(t, not(not(constant(1337))), `
		movl    $1337, %eax
		cmpl    $0, %eax
		movl    $0, %eax
		sete    %al
		cmpl    $0, %eax
		movl    $0, %eax
		sete    %al
	`)
}

func TestGenerator_MixedNesting(t *testing.T) {
	// -~!5
	checkExpression(t, neg(complement(not(constant(5)))), `
		movl    $5, %eax
		cmpl    $0, %eax
		movl    $0, %eax
		sete    %al
		not     %eax
		neg     %eax
	`)
}

// ============================================================================
// Statements, Functions & Programs
// ============================================================================

func TestGenerator_Return(t *testing.T) {
	// return 42
	checkStatement(t, ast.NewReturn(constant(42)), `
		movl    $42, %eax
		ret
	`)
}

func TestGenerator_FunctionSimpleReturn(t *testing.T) {
	checkFunction(t, ast.NewFunction("meaning_of_life", ast.NewReturn(constant(42))), `
		    .globl _meaning_of_life
		_meaning_of_life:
		    movl    $42, %eax
		    ret
	`)
}

func TestGenerator_Return0(t *testing.T) {
	program := ast.NewProgram(ast.NewFunction("main", ast.NewReturn(constant(0))))
	//
	checkProgram(t, program, `
		    .globl _main
		_main:
		    movl    $0, %eax
		    ret
	`)
}

func TestGenerator_ExactText(t *testing.T) {
	program := ast.NewProgram(ast.NewFunction("main", ast.NewReturn(neg(constant(2)))))
	//
	assert.Equal(t, "\t.globl _main\n_main:\n\tmovl\t$2, %eax\n\tneg\t%eax\n\tret\n", Generate(program))
}

// ============================================================================
// Properties
// ============================================================================

func TestGenerator_ConstantsMoveExactValue(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 42, 255, 65536, math.MaxInt32, math.MinInt32} {
		tokens, err := asm.Tokenize(generate(func(g *Generator) { g.GenExpression(constant(n)) }))
		//
		require.NoError(t, err)
		assert.Equal(t, []asm.Token{
			asm.NewKeywordToken(asm.MOVL),
			asm.NewLiteralToken(constant(n).String()),
			asm.NewPunctuationToken(asm.COMMA),
			asm.NewRegisterToken(asm.EAX),
		}, tokens)
	}
}

func TestGenerator_DoubleNegationAppendsTwoNegates(t *testing.T) {
	for _, e := range sampleExpressions() {
		inner := generate(func(g *Generator) { g.GenExpression(e) })
		outer := generate(func(g *Generator) { g.GenExpression(neg(neg(e))) })
		//
		asmtest.AssertEquivalent(t, outer, inner+"neg %eax\nneg %eax\n", e.String())
	}
}

func TestGenerator_LogicalNegationAppendsSequence(t *testing.T) {
	for _, e := range sampleExpressions() {
		inner := generate(func(g *Generator) { g.GenExpression(e) })
		outer := generate(func(g *Generator) { g.GenExpression(not(e)) })
		//
		asmtest.AssertEquivalent(t, outer, inner+"cmpl $0, %eax\nmovl $0, %eax\nsete %al\n", e.String())
	}
}

func TestGenerator_InstructionCount(t *testing.T) {
	// one move, plus three instructions per logical negation
	for depth := range 5 {
		var e = constant(1337)
		for range depth {
			e = not(e)
		}
		//
		text := generate(func(g *Generator) { g.GenExpression(e) })
		assert.Equal(t, 1+3*depth, strings.Count(text, "\n"))
		assert.Equal(t, depth, strings.Count(text, "sete"))
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	program := ast.NewProgram(ast.NewFunction("main", ast.NewReturn(not(neg(complement(constant(3)))))))
	//
	assert.Equal(t, Generate(program), Generate(program))
}

// ============================================================================
// Failures
// ============================================================================

func TestGenerator_MalformedTree(t *testing.T) {
	var builder strings.Builder
	//
	gen := NewGenerator(&builder)
	//
	assert.Panics(t, func() { gen.GenExpression(nil) })
	assert.Panics(t, func() { gen.GenStatement(nil) })
	assert.Panics(t, func() { gen.GenFunction(nil) })
	assert.Panics(t, func() { gen.GenProgram(nil) })
	assert.Panics(t, func() { gen.GenExpression(ast.NewUnaryOp(ast.Operator(42), constant(1))) })
}

func TestGenerator_SinkError(t *testing.T) {
	sink := &failingWriter{limit: 1}
	gen := NewGenerator(sink)
	//
	gen.GenProgram(ast.NewProgram(ast.NewFunction("main", ast.NewReturn(constant(0)))))
	//
	assert.ErrorIs(t, gen.Err(), errSinkFull)
	assert.Equal(t, 2, sink.writes)
}

// ============================================================================
// Framework
// ============================================================================

var errSinkFull = errors.New("sink full")

type failingWriter struct {
	limit  int
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	//
	if w.writes > w.limit {
		return 0, errSinkFull
	}
	//
	return len(p), nil
}

func constant(n int32) ast.Expr      { return ast.NewIntegerConstant(n) }
func neg(e ast.Expr) ast.Expr        { return ast.NewUnaryOp(ast.NEGATION, e) }
func complement(e ast.Expr) ast.Expr { return ast.NewUnaryOp(ast.BITWISE_COMPLEMENT, e) }
func not(e ast.Expr) ast.Expr        { return ast.NewUnaryOp(ast.LOGICAL_NEGATION, e) }

func sampleExpressions() []ast.Expr {
	return []ast.Expr{
		constant(0),
		constant(-7),
		neg(constant(3)),
		complement(not(constant(9))),
		not(not(neg(constant(1)))),
	}
}

func generate(fn func(*Generator)) string {
	var builder strings.Builder
	//
	fn(NewGenerator(&builder))
	//
	return builder.String()
}

func checkProgram(t *testing.T, program *ast.Program, expected string) {
	t.Helper()
	asmtest.AssertEquivalent(t, generate(func(g *Generator) { g.GenProgram(program) }), expected)
}

func checkFunction(t *testing.T, fn *ast.Function, expected string) {
	t.Helper()
	asmtest.AssertEquivalent(t, generate(func(g *Generator) { g.GenFunction(fn) }), expected)
}

func checkStatement(t *testing.T, stmt ast.Stmt, expected string) {
	t.Helper()
	asmtest.AssertEquivalent(t, generate(func(g *Generator) { g.GenStatement(stmt) }), expected)
}

func checkExpression(t *testing.T, expr ast.Expr, expected string) {
	t.Helper()
	asmtest.AssertEquivalent(t, generate(func(g *Generator) { g.GenExpression(expr) }), expected)
}
