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
package lex

import "github.com/consensys/go-clanger/pkg/util/source"

// Token associates a kind with a given range of characters in the input being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// kind.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer provides a top-level construct for tokenising a given input sequence.
// At each position the rule giving the longest match wins, with ties broken in
// favour of the rule given first.  Thus, a keyword rule listed before an
// identifier rule only matches when the keyword is not the prefix of a longer
// identifier.
type Lexer[T any] struct {
	items  []T
	index  int
	rules  []LexRule[T]
	buffer []Token
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many items from the original sequence were left.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether or not there are any tokens remaining to visit.
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return len(p.buffer) > 0
}

// Next returns the next token and advances the lexer.
func (p *Lexer[T]) Next() Token {
	p.scan()
	//
	next := p.buffer[0]
	p.buffer = p.buffer[1:]
	//
	if p.index == len(p.items) {
		// EOF condition
		p.index++
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// Collect is a convenience function which lexes all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer[T]) scan() {
	if len(p.buffer) != 0 || p.index > len(p.items) {
		return
	}
	//
	var (
		best uint
		kind uint
	)
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > best {
			best, kind = n, r.kind
		}
	}
	//
	if best > 0 {
		end := min(len(p.items), p.index+int(best))
		p.buffer = append(p.buffer, Token{kind, source.NewSpan(p.index, end)})
	}
}
