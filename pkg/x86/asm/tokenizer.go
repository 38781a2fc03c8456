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
	"iter"
	"unicode"

	"github.com/consensys/go-clanger/pkg/util/source"
	"github.com/consensys/go-clanger/pkg/util/source/lex"
)

// END_OF signals "end of text"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "# ... \n"
const COMMENT uint = 2

// SEPARATOR signals "," or ":"
const SEPARATOR uint = 3

// LEXEME signals any other run of non-whitespace characters
const LEXEME uint = 4

var whitespace lex.Scanner[rune] = lex.Many(lex.Space())

var comment lex.Scanner[rune] = lex.SequenceNullableLast(lex.Unit('#'), lex.Until('\n'))

var lexeme lex.Scanner[rune] = lex.Many(lex.Satisfies(isLexemeChar))

// Every character is covered by one of these rules, hence splitting text into
// lexemes cannot fail.
var rules = []lex.LexRule[rune]{
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Or(lex.Unit(','), lex.Unit(':')), SEPARATOR),
	lex.Rule(lexeme, LEXEME),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Any character other than whitespace, a separator or the start of a comment.
func isLexemeChar(c rune) bool {
	return !unicode.IsSpace(c) && c != ',' && c != ':' && c != '#'
}

// UnrecognizedLexemeError reports a lexeme which could not be classified as
// any assembly token.
type UnrecognizedLexemeError struct {
	Lexeme string
	Span   source.Span
	// Line (counting from 1) on which the lexeme occurs
	Line int
}

// Error implements the error interface.
func (e *UnrecognizedLexemeError) Error() string {
	return fmt.Sprintf("line %d: unrecognised lexeme \"%s\"", e.Line, e.Lexeme)
}

// Tokenizer lazily turns assembly text into a sequence of tokens.  Whitespace
// only separates lexemes, so the amount and kind of whitespace (including
// indentation) never affects the resulting sequence.  Tokenizing stops at the
// first lexeme which cannot be classified, and Err then reports it.
type Tokenizer struct {
	srcfile *source.File
	lexer   *lex.Lexer[rune]
	// Next token (if already classified)
	buffer []Token
	// Span of the most recently returned token
	span source.Span
	// Span of the buffered token
	pending source.Span
	err     error
	done    bool
}

// NewTokenizer constructs a tokenizer over a given piece of assembly text.
func NewTokenizer(text string) *Tokenizer {
	srcfile := source.NewSourceFile("", []byte(text))
	//
	return &Tokenizer{
		srcfile: srcfile,
		lexer:   lex.NewLexer(srcfile.Contents(), rules...),
	}
}

// HasNext checks whether or not there are any tokens remaining.
func (p *Tokenizer) HasNext() bool {
	for len(p.buffer) == 0 && !p.done && p.lexer.HasNext() {
		next := p.lexer.Next()
		//
		switch next.Kind {
		case WHITESPACE, COMMENT:
			continue
		case END_OF:
			p.done = true
		default:
			p.classify(next.Span)
		}
	}
	//
	return len(p.buffer) > 0
}

// Next returns the next token and advances the tokenizer.  This should only be
// called after HasNext has returned true.
func (p *Tokenizer) Next() Token {
	if !p.HasNext() {
		panic("no tokens remaining")
	}
	//
	next := p.buffer[0]
	p.buffer = p.buffer[1:]
	p.span = p.pending
	//
	return next
}

// Span returns the span of the most recently returned token within the text.
func (p *Tokenizer) Span() source.Span {
	return p.span
}

// Line returns the line (counting from 1) of the most recently returned token.
func (p *Tokenizer) Line() int {
	line, _ := p.srcfile.Position(p.span.Start())
	return line
}

// Err returns the error which stopped tokenizing early, or nil if the text was
// (so far) tokenized completely.
func (p *Tokenizer) Err() error {
	return p.err
}

// Collect is a convenience function which tokenizes everything remaining in one
// go.
func (p *Tokenizer) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Tokenizer) classify(span source.Span) {
	text := p.srcfile.Text(span)
	//
	if token, ok := Classify(text); ok {
		p.buffer = append(p.buffer, token)
		p.pending = span
	} else {
		line, _ := p.srcfile.Position(span.Start())
		p.err = &UnrecognizedLexemeError{text, span, line}
		p.done = true
	}
}

// Tokenize splits a given piece of assembly text into tokens.  If some lexeme
// cannot be classified, the tokens up to that point are returned along with an
// error.
func Tokenize(text string) ([]Token, error) {
	tokenizer := NewTokenizer(text)
	tokens := tokenizer.Collect()
	//
	return tokens, tokenizer.Err()
}

// All returns the (lazy) sequence of tokens for a given piece of assembly
// text.  The sequence stops early at any lexeme which cannot be classified.
// Since it depends only on the text, it can be iterated any number of times
// with the same result.
func All(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		tokenizer := NewTokenizer(text)
		//
		for tokenizer.HasNext() {
			if !yield(tokenizer.Next()) {
				return
			}
		}
	}
}
