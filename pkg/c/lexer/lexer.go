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
package lexer

import (
	"github.com/consensys/go-clanger/pkg/c/token"
	"github.com/consensys/go-clanger/pkg/util/source"
	"github.com/consensys/go-clanger/pkg/util/source/lex"
)

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Space())

// Rule for describing numbers.  A number is either a hexadecimal or a decimal
// one.
var (
	decimalDigit = lex.Within('0', '9')

	hexDigit = lex.Or(
		lex.Within('0', '9'),
		lex.Within('A', 'F'),
		lex.Within('a', 'f'),
	)
	hexStart = lex.Or(lex.String("0x"), lex.String("0X"))

	number = lex.Or(
		lex.SequenceNullableLast(hexStart, hexDigit, lex.Many(hexDigit)),
		lex.SequenceNullableLast(decimalDigit, lex.Many(decimalDigit)),
	)
)

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.SequenceNullableLast(identifierStart, identifierRest)

// Comments are either "// ...\n" or "/* ... */"
var comment lex.Scanner[rune] = lex.Or(
	lex.SequenceNullableLast(lex.String("//"), lex.Until('\n')),
	lex.Sequence(lex.String("/*"), lex.Through('*', '/')),
)

// A "/*" with no matching "*/" runs to the end of the input, and is reported
// as illegal text rather than being lexed as "/" and "*".
var unterminatedComment lex.Scanner[rune] = func(items []rune) uint {
	if lex.String("/*")(items) == 0 || lex.Through('*', '/')(items[2:]) != 0 {
		return 0
	}
	//
	return uint(len(items))
}

// lexing rules
var rules = []lex.LexRule[rune]{
	lex.Rule(comment, token.COMMENT),
	lex.Rule(unterminatedComment, token.ILLEGAL),
	lex.Rule(lex.Unit('('), token.LBRACE),
	lex.Rule(lex.Unit(')'), token.RBRACE),
	lex.Rule(lex.Unit('{'), token.LCURLY),
	lex.Rule(lex.Unit('}'), token.RCURLY),
	lex.Rule(lex.Unit(';'), token.SEMICOLON),
	lex.Rule(lex.Unit('-'), token.MINUS),
	lex.Rule(lex.Unit('~'), token.TILDE),
	lex.Rule(lex.Unit('!'), token.BANG),
	lex.Rule(lex.Unit('+'), token.PLUS),
	lex.Rule(lex.Unit('*'), token.STAR),
	lex.Rule(lex.Unit('/'), token.SLASH),
	lex.Rule(whitespace, token.WHITESPACE),
	lex.Rule(number, token.NUMBER),
	lex.Rule(lex.String("int"), token.KEYWORD_INT),
	lex.Rule(lex.String("return"), token.KEYWORD_RETURN),
	lex.Rule(identifier, token.IDENTIFIER),
	lex.Rule(lex.Eof[rune](), token.END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  Whitespace and comments are removed, but the
// final END_OF token is retained.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer  = lex.NewLexer(srcfile.Contents(), rules...)
		tokens []lex.Token
	)
	//
	for lexer.HasNext() {
		next := lexer.Next()
		//
		if next.Kind == token.ILLEGAL {
			msg := token.DescribeIllegal(srcfile.Text(next.Span))
			return nil, []source.SyntaxError{*srcfile.SyntaxError(next.Span, msg)}
		} else if !isLayout(next.Kind) {
			tokens = append(tokens, next)
		}
	}
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	//
	return tokens, nil
}

func isLayout(kind uint) bool {
	return kind == token.WHITESPACE || kind == token.COMMENT
}
