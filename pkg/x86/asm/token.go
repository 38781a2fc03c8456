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
package asm

import (
	"fmt"
	"strings"
)

// Class identifies the structural category of an assembly token.
type Class uint8

const (
	// INVALID is the class of the zero token, which no lexeme produces.
	INVALID Class = iota
	// DIRECTIVE is an assembler directive, such as ".globl".
	DIRECTIVE
	// KEYWORD is an instruction mnemonic, such as "movl".
	KEYWORD
	// REGISTER is a register reference, such as "%eax".
	REGISTER
	// LITERAL is an immediate operand, such as "$42".
	LITERAL
	// IDENTIFIER is a label or symbol reference.
	IDENTIFIER
	// PUNCTUATION is an operand separator, such as ",".
	PUNCTUATION
)

var classNames = []string{"invalid", "directive", "keyword", "register", "literal", "identifier", "punctuation"}

func (c Class) String() string { return nameOf(classNames, c) }

// Token is a single structural unit of AT&T assembly.  Tokens are plain values
// and two tokens are equal (under ==) exactly when they have the same class and
// payload.  The zero Token has class INVALID and equals no classified token.
type Token struct {
	class Class
	// Payload for directives, keywords, registers and punctuation.
	code uint8
	// Payload for literals (without "$") and identifiers.
	text string
}

// NewDirectiveToken constructs a directive token.
func NewDirectiveToken(d Directive) Token { return Token{DIRECTIVE, uint8(d), ""} }

// NewKeywordToken constructs a keyword token.
func NewKeywordToken(k Keyword) Token { return Token{KEYWORD, uint8(k), ""} }

// NewRegisterToken constructs a register token.
func NewRegisterToken(r Register) Token { return Token{REGISTER, uint8(r), ""} }

// NewPunctuationToken constructs a punctuation token.
func NewPunctuationToken(p Punctuation) Token { return Token{PUNCTUATION, uint8(p), ""} }

// NewLiteralToken constructs a literal token from the text following "$".
func NewLiteralToken(value string) Token { return Token{LITERAL, 0, value} }

// NewIdentifierToken constructs an identifier token.
func NewIdentifierToken(name string) Token { return Token{IDENTIFIER, 0, name} }

// Class returns the structural category of this token.
func (t Token) Class() Class {
	return t.class
}

// Text returns the spelling of this token's payload, without any "$" or "%"
// prefix.
func (t Token) Text() string {
	switch t.class {
	case DIRECTIVE:
		return Directive(t.code).String()
	case KEYWORD:
		return Keyword(t.code).String()
	case REGISTER:
		return Register(t.code).String()
	case PUNCTUATION:
		return Punctuation(t.code).String()
	default:
		return t.text
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.class.String(), t.Text())
}

// Classify determines the token represented by a single lexeme.  Rules are
// applied in priority order: punctuation, "$" literals, "%" registers,
// directives, mnemonics and, finally, identifiers.  A lexeme which starts like
// a literal or register but is malformed has no token.
func Classify(lexeme string) (Token, bool) {
	var empty Token
	//
	if lexeme == "" {
		return empty, false
	} else if p, ok := ParsePunctuation(lexeme); ok {
		return NewPunctuationToken(p), true
	}
	//
	switch lexeme[0] {
	case '$':
		if value := lexeme[1:]; isIntegerLiteral(value) {
			return NewLiteralToken(value), true
		}
		//
		return empty, false
	case '%':
		if r, ok := ParseRegister(lexeme[1:]); ok {
			return NewRegisterToken(r), true
		}
		//
		return empty, false
	}
	//
	if d, ok := ParseDirective(lexeme); ok {
		return NewDirectiveToken(d), true
	} else if k, ok := ParseKeyword(lexeme); ok {
		return NewKeywordToken(k), true
	}
	//
	return NewIdentifierToken(lexeme), true
}

// An integer literal is either all decimal digits, or "0x" followed by hex
// digits.  Either may be preceded by a minus sign, which "movl $-1, %eax"
// needs for negative immediates.
func isIntegerLiteral(text string) bool {
	text = strings.TrimPrefix(text, "-")
	//
	if hex, ok := strings.CutPrefix(text, "0x"); ok {
		return hex != "" && allOf(hex, isHexDigit)
	}
	//
	return text != "" && allOf(text, isDecimalDigit)
}

func allOf(text string, pred func(byte) bool) bool {
	for i := 0; i < len(text); i++ {
		if !pred(text[i]) {
			return false
		}
	}
	//
	return true
}

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
