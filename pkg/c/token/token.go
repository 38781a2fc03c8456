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
package token

import (
	"fmt"
	"strings"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "// ..." or "/* ... */"
const COMMENT uint = 2

// ILLEGAL signals text which could not be lexed
const ILLEGAL uint = 3

// LBRACE signals "("
const LBRACE uint = 4

// RBRACE signals ")"
const RBRACE uint = 5

// LCURLY signals "{"
const LCURLY uint = 6

// RCURLY signals "}"
const RCURLY uint = 7

// SEMICOLON signals ";"
const SEMICOLON uint = 8

// NUMBER signals an integer literal
const NUMBER uint = 10

// IDENTIFIER signals a function or variable name
const IDENTIFIER uint = 20

// KEYWORD_INT signals the "int" type
const KEYWORD_INT uint = 21

// KEYWORD_RETURN signals a return statement
const KEYWORD_RETURN uint = 22

// MINUS signals "-"
const MINUS uint = 30

// TILDE signals "~"
const TILDE uint = 31

// BANG signals "!"
const BANG uint = 32

// PLUS signals "+"
const PLUS uint = 33

// STAR signals "*"
const STAR uint = 34

// SLASH signals "/"
const SLASH uint = 35

var kindNames = map[uint]string{
	END_OF:         "end of file",
	WHITESPACE:     "whitespace",
	COMMENT:        "comment",
	ILLEGAL:        "illegal",
	LBRACE:         "(",
	RBRACE:         ")",
	LCURLY:         "{",
	RCURLY:         "}",
	SEMICOLON:      ";",
	NUMBER:         "number",
	IDENTIFIER:     "identifier",
	KEYWORD_INT:    "int",
	KEYWORD_RETURN: "return",
	MINUS:          "-",
	TILDE:          "~",
	BANG:           "!",
	PLUS:           "+",
	STAR:           "*",
	SLASH:          "/",
}

// KindName returns a human-readable name for a given token kind.
func KindName(kind uint) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	//
	return fmt.Sprintf("kind(%d)", kind)
}

// Token is a single lexical unit of C source.  Tokens are plain values and are
// compared with ==.
type Token struct {
	Kind uint
	// Text is the exact text matched.
	Text string
}

// New constructs a token of a given kind whose text is the canonical spelling
// for that kind.  This is only meaningful for keywords and punctuation.
func New(kind uint) Token {
	return Token{kind, KindName(kind)}
}

// Identifier constructs an identifier token.
func Identifier(name string) Token {
	return Token{IDENTIFIER, name}
}

// Number constructs an integer literal token.
func Number(text string) Token {
	return Token{NUMBER, text}
}

func (t Token) String() string {
	switch t.Kind {
	case IDENTIFIER, NUMBER, ILLEGAL:
		return fmt.Sprintf("%s(%s)", KindName(t.Kind), t.Text)
	default:
		return KindName(t.Kind)
	}
}

// DescribeIllegal gives the diagnostic for the text of an ILLEGAL token.
func DescribeIllegal(text string) string {
	if strings.HasPrefix(text, "/*") {
		return "unterminated comment"
	}
	//
	return fmt.Sprintf("unknown text encountered \"%s\"", text)
}
