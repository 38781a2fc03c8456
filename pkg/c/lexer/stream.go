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
	"unicode"

	"github.com/consensys/go-clanger/pkg/c/token"
	"github.com/consensys/go-clanger/pkg/util"
	"github.com/consensys/go-clanger/pkg/util/source"
	"github.com/consensys/go-clanger/pkg/util/source/lex"
)

// Stream is a token source which lexes a source file on demand, one token per
// call to Next.  Text which cannot be lexed is returned as a single ILLEGAL
// token, after which the stream is exhausted.
type Stream struct {
	srcfile *source.File
	lexer   *lex.Lexer[rune]
	current util.Option[token.Token]
	// Span of the current token
	span source.Span
	// Position of the current token
	line, column int
	// Indicates the end of the stream has been reached.
	done bool
}

// NewStream constructs a new token stream over a given source file.
func NewStream(srcfile *source.File) *Stream {
	return &Stream{
		srcfile: srcfile,
		lexer:   lex.NewLexer(srcfile.Contents(), rules...),
		current: util.None[token.Token](),
	}
}

// Next implementation for the token.Source interface.
func (p *Stream) Next() util.Option[token.Token] {
	p.current = util.None[token.Token]()
	//
	for !p.done {
		if !p.lexer.HasNext() {
			p.done = true
			//
			if p.lexer.Remaining() > 0 {
				p.illegal()
			}
			//
			break
		}
		//
		next := p.lexer.Next()
		//
		switch {
		case isLayout(next.Kind):
			continue
		case next.Kind == token.END_OF:
			p.done = true
		default:
			p.accept(next.Kind, next.Span)
		}
		//
		break
	}
	//
	return p.current
}

// Current implementation for the token.Source interface.
func (p *Stream) Current() util.Option[token.Token] {
	return p.current
}

// Line implementation for the token.Source interface.
func (p *Stream) Line() int {
	return p.line
}

// Column implementation for the token.Source interface.
func (p *Stream) Column() int {
	return p.column
}

// Span returns the span of the most recently returned token within the
// underlying source file.
func (p *Stream) Span() source.Span {
	return p.span
}

// SourceFile returns the source file being lexed.
func (p *Stream) SourceFile() *source.File {
	return p.srcfile
}

func (p *Stream) accept(kind uint, span source.Span) {
	p.span = span
	p.line, p.column = p.srcfile.Position(span.Start())
	p.current = util.Some(token.Token{Kind: kind, Text: p.srcfile.Text(span)})
}

// Report unlexable text up to the next whitespace character as illegal.
func (p *Stream) illegal() {
	var (
		start = int(p.lexer.Index())
		text  = p.srcfile.Contents()[start:]
		n     = max(1, lex.Many(lex.Satisfies(isNotSpace))(text))
	)
	//
	p.accept(token.ILLEGAL, source.NewSpan(start, start+int(n)))
}

func isNotSpace(c rune) bool {
	return !unicode.IsSpace(c)
}
