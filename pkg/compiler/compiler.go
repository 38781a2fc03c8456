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
package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-clanger/pkg/c/ast"
	"github.com/consensys/go-clanger/pkg/c/lexer"
	"github.com/consensys/go-clanger/pkg/c/parser"
	"github.com/consensys/go-clanger/pkg/util"
	"github.com/consensys/go-clanger/pkg/util/source"
	"github.com/consensys/go-clanger/pkg/x86/codegen"
	log "github.com/sirupsen/logrus"
)

// ParseSourceFile lexes and parses a given source file into a program.  Syntax
// errors are reported as a *source.SyntaxError covering the offending token.
func ParseSourceFile(srcfile *source.File) (*ast.Program, error) {
	var (
		stats  = util.NewPerfStats()
		stream = lexer.NewStream(srcfile)
	)
	//
	log.Debugf("parsing source file %s", srcfile.Filename())
	//
	program, err := parser.NewParser(stream).Parse()
	if err != nil {
		// The stream's current token is the parser's lookahead
		return nil, srcfile.SyntaxError(stream.Span(), err.Message)
	}
	//
	stats.Log("parsing")
	//
	if ret, ok := program.Function.Body.(*ast.Return); ok {
		log.Debugf("parsed function %s (expression depth %d)", program.Function.Name, ast.Depth(ret.Expr))
	}
	//
	return program, nil
}

// Compile a given source file into assembly, which is written to the given
// sink.
func Compile(srcfile *source.File, out io.Writer) error {
	program, err := ParseSourceFile(srcfile)
	if err != nil {
		return err
	}
	//
	return Generate(program, out)
}

// Generate writes the assembly for a given program to the given sink.
func Generate(program *ast.Program, out io.Writer) error {
	var (
		stats = util.NewPerfStats()
		gen   = codegen.NewGenerator(out)
	)
	//
	gen.GenProgram(program)
	//
	if err := gen.Err(); err != nil {
		return fmt.Errorf("writing assembly: %w", err)
	}
	//
	stats.Log("code generation")
	//
	return nil
}

// CompileString compiles some C source text into assembly text.
func CompileString(filename string, text string) (string, error) {
	var builder strings.Builder
	//
	if err := Compile(source.NewSourceFile(filename, []byte(text)), &builder); err != nil {
		return "", err
	}
	//
	return builder.String(), nil
}
