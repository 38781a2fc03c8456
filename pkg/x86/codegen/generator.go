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
// Package codegen translates a C abstract syntax tree into AT&T syntax x86
// assembly.
//
// A single accumulator register (%eax) holds the value of whichever expression
// was most recently evaluated, and is also where a function leaves its result.
// Code is emitted by a straightforward post-order walk of the tree: there is no
// instruction reordering or peephole simplification.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-clanger/pkg/c/ast"
	"github.com/consensys/go-clanger/pkg/x86/asm"
	log "github.com/sirupsen/logrus"
)

// SYMBOL_PREFIX is prepended to every function name to form its external
// symbol.
const SYMBOL_PREFIX = "_"

// ACCUMULATOR is the register holding the current value.
const ACCUMULATOR = asm.EAX

// ACCUMULATOR_LOW is the low byte of the accumulator, used when synthesising
// boolean results.
const ACCUMULATOR_LOW = asm.AL

// Generator emits assembly for an AST into a given output sink.  Output for a
// given tree is always identical.  A generator assumes its input is well-formed
// and panics on any node it does not recognise.
type Generator struct {
	w io.Writer
	// First error encountered writing to w
	err error
}

// NewGenerator constructs a generator writing to a given sink.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{w: w}
}

// Generate is a convenience function which returns the assembly for a given
// program as a string.
func Generate(program *ast.Program) string {
	var builder strings.Builder
	// Writing to a strings.Builder cannot fail
	NewGenerator(&builder).GenProgram(program)
	//
	return builder.String()
}

// Err returns the first error encountered whilst writing to the sink (if any).
// Once an error has arisen, nothing further is written.
func (g *Generator) Err() error {
	return g.err
}

// GenProgram emits assembly for a complete program.
func (g *Generator) GenProgram(program *ast.Program) {
	if program == nil {
		panic("missing program")
	}
	//
	g.GenFunction(program.Function)
}

// GenFunction emits a global symbol and label for a function, followed by its
// body.  Functions have no stack frame, hence there is no prologue or epilogue.
func (g *Generator) GenFunction(fn *ast.Function) {
	if fn == nil {
		panic("missing function")
	}
	//
	log.Debugf("generating function %s", fn.Name)
	//
	symbol := SYMBOL_PREFIX + fn.Name
	//
	g.emit("\t%s %s\n", asm.GLOBL, symbol)
	g.emit("%s%s\n", symbol, asm.COLON)
	g.GenStatement(fn.Body)
}

// GenStatement emits assembly for a statement.
func (g *Generator) GenStatement(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Return:
		// Result is already in the accumulator
		g.GenExpression(s.Expr)
		g.instruction(asm.RET)
	default:
		panic(fmt.Sprintf("unknown statement encountered (%T)", stmt))
	}
}

// GenExpression emits assembly which leaves the value of an expression in the
// accumulator.
func (g *Generator) GenExpression(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.IntegerConstant:
		g.instruction(asm.MOVL, immediate(e.Value), register(ACCUMULATOR))
	case *ast.UnaryOp:
		g.GenExpression(e.Operand)
		g.genUnaryOp(e.Operator)
	default:
		panic(fmt.Sprintf("unknown expression encountered (%T)", expr))
	}
}

// Apply a unary operator in place to the accumulator.
func (g *Generator) genUnaryOp(op ast.Operator) {
	switch op {
	case ast.NEGATION:
		g.instruction(asm.NEG, register(ACCUMULATOR))
	case ast.BITWISE_COMPLEMENT:
		g.instruction(asm.NOT, register(ACCUMULATOR))
	case ast.LOGICAL_NEGATION:
		g.instruction(asm.CMPL, immediate(0), register(ACCUMULATOR))
		g.instruction(asm.MOVL, immediate(0), register(ACCUMULATOR))
		g.instruction(asm.SETE, register(ACCUMULATOR_LOW))
	default:
		panic(fmt.Sprintf("unknown operator encountered (%s)", op.String()))
	}
}

// Emit a single (indented) instruction with zero or more operands.
func (g *Generator) instruction(mnemonic asm.Keyword, operands ...string) {
	if len(operands) == 0 {
		g.emit("\t%s\n", mnemonic)
	} else {
		g.emit("\t%s\t%s\n", mnemonic, strings.Join(operands, asm.COMMA.String()+" "))
	}
}

func (g *Generator) emit(format string, args ...any) {
	if g.err == nil {
		_, g.err = fmt.Fprintf(g.w, format, args...)
	}
}

func immediate(value int32) string {
	return fmt.Sprintf("$%d", value)
}

func register(r asm.Register) string {
	return "%" + r.String()
}
