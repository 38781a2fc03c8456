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
	"errors"
	"fmt"
	"strconv"

	"github.com/consensys/go-clanger/pkg/c/ast"
	"github.com/consensys/go-clanger/pkg/c/token"
	"github.com/consensys/go-clanger/pkg/util"
)

// SyntaxError describes a problem encountered whilst parsing, along with the
// position of the offending token (where the token source provides one).
type SyntaxError struct {
	// Line (counting from 1), or 0 if unknown.
	Line int
	// Column (counting from 1), or 0 if unknown.
	Column int
	// Message being reported.
	Message string
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	if p.Line == 0 {
		return p.Message
	}
	//
	return fmt.Sprintf("%d:%d: %s", p.Line, p.Column, p.Message)
}

// Parse a complete program from a given token source.
func Parse(src token.Source) (*ast.Program, error) {
	program, err := NewParser(src).Parse()
	//
	if err != nil {
		return nil, err
	}
	//
	return program, nil
}

// Parser is a recursive-descent parser for the supported C subset.  It depends
// only on the token.Source interface, never on a concrete lexer.
type Parser struct {
	src token.Source
	// One token of lookahead, or None at end of input.
	lookahead util.Option[token.Token]
	// Position of the lookahead token
	line, column int
}

// NewParser constructs a new parser for a given token source.
func NewParser(src token.Source) *Parser {
	p := &Parser{src: src}
	p.advance()
	//
	return p
}

// Parse the token source into a program, or report the first syntax error.
func (p *Parser) Parse() (*ast.Program, *SyntaxError) {
	fn, err := p.parseFunction()
	//
	if err != nil {
		return nil, err
	} else if p.lookahead.HasValue() {
		return nil, p.syntaxError("unexpected token after function")
	}
	//
	return ast.NewProgram(fn), nil
}

func (p *Parser) parseFunction() (*ast.Function, *SyntaxError) {
	var (
		name token.Token
		body ast.Stmt
		err  *SyntaxError
	)
	//
	if _, err = p.expect(token.KEYWORD_INT); err != nil {
		return nil, err
	} else if name, err = p.expect(token.IDENTIFIER); err != nil {
		return nil, err
	} else if _, err = p.expect(token.LBRACE); err != nil {
		return nil, err
	} else if _, err = p.expect(token.RBRACE); err != nil {
		return nil, err
	} else if _, err = p.expect(token.LCURLY); err != nil {
		return nil, err
	} else if body, err = p.parseStatement(); err != nil {
		return nil, err
	} else if _, err = p.expect(token.RCURLY); err != nil {
		return nil, err
	}
	//
	return ast.NewFunction(name.Text, body), nil
}

func (p *Parser) parseStatement() (ast.Stmt, *SyntaxError) {
	var (
		e   ast.Expr
		err *SyntaxError
	)
	//
	if !p.follows(token.KEYWORD_RETURN) {
		return nil, p.syntaxError("unknown statement")
	}
	//
	p.advance()
	//
	if e, err = p.parseExpr(); err != nil {
		return nil, err
	} else if _, err = p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	//
	return ast.NewReturn(e), nil
}

func (p *Parser) parseExpr() (ast.Expr, *SyntaxError) {
	if p.lookahead.IsEmpty() {
		return nil, p.syntaxError("unexpected end of input, expected expression")
	}
	//
	lookahead := p.lookahead.Unwrap()
	//
	switch lookahead.Kind {
	case token.NUMBER:
		return p.parseNumber()
	case token.MINUS:
		return p.parseUnary(ast.NEGATION)
	case token.TILDE:
		return p.parseUnary(ast.BITWISE_COMPLEMENT)
	case token.BANG:
		return p.parseUnary(ast.LOGICAL_NEGATION)
	case token.LBRACE:
		p.advance()
		//
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		} else if _, err = p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		//
		return e, nil
	case token.ILLEGAL:
		return nil, p.syntaxError(token.DescribeIllegal(lookahead.Text))
	default:
		return nil, p.syntaxError("expected expression")
	}
}

func (p *Parser) parseUnary(op ast.Operator) (ast.Expr, *SyntaxError) {
	p.advance()
	//
	operand, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	//
	return ast.NewUnaryOp(op, operand), nil
}

func (p *Parser) parseNumber() (ast.Expr, *SyntaxError) {
	var text = p.lookahead.Unwrap().Text
	//
	val, err := strconv.ParseInt(text, 0, 32)
	//
	if errors.Is(err, strconv.ErrRange) {
		return nil, p.syntaxError("integer literal out of range")
	} else if err != nil {
		return nil, p.syntaxError("malformed integer literal")
	}
	//
	p.advance()
	//
	return ast.NewIntegerConstant(int32(val)), nil
}

// Expect returns an error if the next token is not of the given kind.
// Otherwise, it consumes and returns that token.
func (p *Parser) expect(kind uint) (token.Token, *SyntaxError) {
	var empty token.Token
	//
	if p.lookahead.IsEmpty() {
		msg := fmt.Sprintf("unexpected end of input, expected \"%s\"", token.KindName(kind))
		return empty, p.syntaxError(msg)
	} else if lookahead := p.lookahead.Unwrap(); lookahead.Kind != kind {
		msg := fmt.Sprintf("unexpected \"%s\", expected \"%s\"", lookahead.Text, token.KindName(kind))
		return empty, p.syntaxError(msg)
	}
	//
	next := p.lookahead.Unwrap()
	p.advance()
	//
	return next, nil
}

// Follows checks whether the next token has the given kind.
func (p *Parser) follows(kind uint) bool {
	return p.lookahead.HasValue() && p.lookahead.Unwrap().Kind == kind
}

func (p *Parser) advance() {
	p.lookahead = p.src.Next()
	// Only update the position when there is a token, such that errors at the
	// end of input are reported against the last token seen.
	if p.lookahead.HasValue() {
		p.line, p.column = p.src.Line(), p.src.Column()
	}
}

func (p *Parser) syntaxError(msg string) *SyntaxError {
	// Text which could not be lexed is reported as such, whatever was expected
	if p.follows(token.ILLEGAL) {
		msg = token.DescribeIllegal(p.lookahead.Unwrap().Text)
	}
	//
	return &SyntaxError{p.line, p.column, msg}
}
