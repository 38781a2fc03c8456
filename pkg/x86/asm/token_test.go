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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary_RoundTrip(t *testing.T) {
	for _, d := range Directives() {
		parsed, ok := ParseDirective(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}
	//
	for _, k := range Keywords() {
		parsed, ok := ParseKeyword(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	//
	for _, r := range Registers() {
		parsed, ok := ParseRegister(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}
	//
	assert.Len(t, Keywords(), 12)
	assert.Len(t, Registers(), 3)
}

func TestVocabulary_Closed(t *testing.T) {
	for _, s := range []string{"MOVL", "movq", "jmp", "", "globl"} {
		_, ok := ParseKeyword(s)
		assert.False(t, ok, s)
	}
	//
	for _, s := range []string{"rax", "EAX", "%eax", "ebx"} {
		_, ok := ParseRegister(s)
		assert.False(t, ok, s)
	}
	//
	_, ok := ParseDirective(".text")
	assert.False(t, ok)
	//
	assert.Equal(t, "unknown(99)", Keyword(99).String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		lexeme   string
		expected Token
	}{
		{",", NewPunctuationToken(COMMA)},
		{":", NewPunctuationToken(COLON)},
		{"$0", NewLiteralToken("0")},
		{"$9001", NewLiteralToken("9001")},
		{"$0x1F", NewLiteralToken("0x1F")},
		{"%eax", NewRegisterToken(EAX)},
		{"%al", NewRegisterToken(AL)},
		{"%ecx", NewRegisterToken(ECX)},
		{".globl", NewDirectiveToken(GLOBL)},
		{"movl", NewKeywordToken(MOVL)},
		{"sete", NewKeywordToken(SETE)},
		{"idivl", NewKeywordToken(IDIVL)},
		{"_main", NewIdentifierToken("_main")},
		{"main", NewIdentifierToken("main")},
		{".text", NewIdentifierToken(".text")},
		{"eax", NewIdentifierToken("eax")},
	}
	//
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			token, ok := Classify(tt.lexeme)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestClassify_Unrecognised(t *testing.T) {
	for _, lexeme := range []string{"", "$", "$x", "$0x", "$12a", "$0xg", "$--1", "%", "%rax", "%EAX"} {
		_, ok := Classify(lexeme)
		assert.False(t, ok, lexeme)
	}
}

func TestClassify_SignedLiteral(t *testing.T) {
	for _, lexeme := range []string{"$-1", "$-2147483648", "$-0x1f"} {
		token, ok := Classify(lexeme)
		//
		assert.True(t, ok, lexeme)
		assert.Equal(t, NewLiteralToken(lexeme[1:]), token)
	}
	// The sign is a single prefix to digits
	for _, lexeme := range []string{"$-", "$+1", "$--1", "$1-", "$-0x", "$0x-1"} {
		_, ok := Classify(lexeme)
		assert.False(t, ok, lexeme)
	}
	// Negative immediates tokenize in an instruction
	tokens, err := Tokenize("movl $-1, %eax")
	//
	require.NoError(t, err)
	assert.Equal(t, []Token{NewKeywordToken(MOVL), NewLiteralToken("-1"), NewPunctuationToken(COMMA),
		NewRegisterToken(EAX)}, tokens)
}

func TestToken_ZeroIsInvalid(t *testing.T) {
	var zero Token
	//
	assert.Equal(t, INVALID, zero.Class())
	assert.Equal(t, "invalid()", zero.String())
	//
	for _, lexeme := range []string{"$", "%", "$x", ""} {
		token, ok := Classify(lexeme)
		//
		assert.False(t, ok, lexeme)
		assert.Equal(t, INVALID, token.Class(), lexeme)
	}
	//
	for _, d := range Directives() {
		assert.NotEqual(t, zero, NewDirectiveToken(d))
	}
	//
	for _, k := range Keywords() {
		assert.NotEqual(t, zero, NewKeywordToken(k))
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "directive(.globl)", NewDirectiveToken(GLOBL).String())
	assert.Equal(t, "keyword(neg)", NewKeywordToken(NEG).String())
	assert.Equal(t, "register(al)", NewRegisterToken(AL).String())
	assert.Equal(t, "literal(3)", NewLiteralToken("3").String())
	assert.Equal(t, "identifier(_main)", NewIdentifierToken("_main").String())
	assert.Equal(t, "punctuation(,)", NewPunctuationToken(COMMA).String())
	assert.Equal(t, LITERAL, NewLiteralToken("3").Class())
}

func TestToken_Equality(t *testing.T) {
	assert.True(t, NewLiteralToken("1") == NewLiteralToken("1"))
	assert.False(t, NewLiteralToken("1") == NewLiteralToken("0x1"))
	assert.False(t, NewIdentifierToken("eax") == NewRegisterToken(EAX))
	assert.False(t, NewKeywordToken(MOVL) == NewIdentifierToken("movl"))
}
