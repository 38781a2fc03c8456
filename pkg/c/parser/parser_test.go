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
package parser

import (
	"testing"

	"github.com/consensys/go-clanger/pkg/c/ast"
	"github.com/consensys/go-clanger/pkg/c/lexer"
	"github.com/consensys/go-clanger/pkg/c/token"
	"github.com/consensys/go-clanger/pkg/util/source"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Return0(t *testing.T) {
	checkProgram(t,
		ast.NewProgram(ast.NewFunction("main", ast.NewReturn(ast.NewIntegerConstant(0)))),
		function("main", token.Number("0"))...)
}

func TestParser_HexLiteral(t *testing.T) {
	checkProgram(t,
		ast.NewProgram(ast.NewFunction("f", ast.NewReturn(ast.NewIntegerConstant(31)))),
		function("f", token.Number("0x1f"))...)
}

func TestParser_UnaryOps(t *testing.T) {
	expected := ast.NewUnaryOp(ast.LOGICAL_NEGATION,
		ast.NewUnaryOp(ast.NEGATION,
			ast.NewUnaryOp(ast.BITWISE_COMPLEMENT, ast.NewIntegerConstant(7))))
	//
	checkProgram(t,
		ast.NewProgram(ast.NewFunction("main", ast.NewReturn(expected))),
		function("main",
			token.New(token.BANG), token.New(token.MINUS), token.New(token.TILDE), token.Number("7"))...)
}

func TestParser_Parentheses(t *testing.T) {
	expected := ast.NewUnaryOp(ast.NEGATION, ast.NewUnaryOp(ast.NEGATION, ast.NewIntegerConstant(842)))
	//
	checkProgram(t,
		ast.NewProgram(ast.NewFunction("main", ast.NewReturn(expected))),
		function("main",
			token.New(token.MINUS), token.New(token.LBRACE), token.New(token.MINUS), token.Number("842"),
			token.New(token.RBRACE))...)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []token.Token
		message string
	}{
		{"empty", nil, "unexpected end of input, expected \"int\""},
		{"missing name", []token.Token{token.New(token.KEYWORD_INT), token.New(token.LBRACE)},
			"unexpected \"(\", expected \"identifier\""},
		{"missing semicolon", function("main", token.Number("1"))[:7],
			"unexpected end of input, expected \";\""},
		{"missing expression", function("main"), "expected expression"},
		{"binary operator", function("main", token.Number("1"), token.New(token.PLUS), token.Number("2")),
			"unexpected \"+\", expected \";\""},
		{"overflow", function("main", token.Number("2147483648")), "integer literal out of range"},
		{"trailing", append(function("main", token.Number("1")), token.New(token.SEMICOLON)),
			"unexpected token after function"},
		{"truncated", function("main", token.Number("1"))[:4], "unexpected end of input, expected \"{\""},
		{"illegal", function("main", token.Token{Kind: token.ILLEGAL, Text: "@"}),
			"unknown text encountered \"@\""},
		{"illegal name", []token.Token{token.New(token.KEYWORD_INT), {Kind: token.ILLEGAL, Text: "@f"}},
			"unknown text encountered \"@f\""},
		{"unterminated comment", append(function("main", token.Number("1")),
			token.Token{Kind: token.ILLEGAL, Text: "/* done"}), "unterminated comment"},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(token.NewFixedSource(tt.tokens...)).Parse()
			//
			require.NotNil(t, err)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestParser_ErrorPosition(t *testing.T) {
	srcfile := source.NewSourceFile("test.c", []byte("int main() {\n  return -;\n}"))
	_, err := Parse(lexer.NewStream(srcfile))
	//
	require.Error(t, err)
	//
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 2, serr.Line)
	assert.Equal(t, 11, serr.Column)
	assert.Equal(t, "2:11: expected expression", err.Error())
}

func TestParser_FromStream(t *testing.T) {
	srcfile := source.NewSourceFile("test.c", []byte("int main() {\n\treturn !!1337;\n}\n"))
	program, err := Parse(lexer.NewStream(srcfile))
	//
	require.NoError(t, err)
	//
	expected := ast.NewUnaryOp(ast.LOGICAL_NEGATION,
		ast.NewUnaryOp(ast.LOGICAL_NEGATION, ast.NewIntegerConstant(1337)))
	assert.True(t, program.Equals(ast.NewProgram(ast.NewFunction("main", ast.NewReturn(expected)))))
}

// ==================================================================
// Framework
// ==================================================================

// Construct the tokens for "int name() { return expr; }"
func function(name string, expr ...token.Token) []token.Token {
	tokens := []token.Token{
		token.New(token.KEYWORD_INT),
		token.Identifier(name),
		token.New(token.LBRACE),
		token.New(token.RBRACE),
		token.New(token.LCURLY),
		token.New(token.KEYWORD_RETURN),
	}
	tokens = append(tokens, expr...)
	//
	return append(tokens, token.New(token.SEMICOLON), token.New(token.RCURLY))
}

func checkProgram(t *testing.T, expected *ast.Program, tokens ...token.Token) {
	program, err := NewParser(token.NewFixedSource(tokens...)).Parse()
	//
	require.Nil(t, err)
	assert.True(t, expected.Equals(program), "expected %s, got %s", expected, program)
	// Structural equality must agree with a field-by-field comparison
	if diff := cmp.Diff(expected, program); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}
}
