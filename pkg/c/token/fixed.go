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

import "github.com/consensys/go-clanger/pkg/util"

// FixedSource replays a fixed, in-memory list of tokens.  This allows a parser
// to be exercised deterministically without any lexing.  Positions are not
// tracked, hence Line and Column always report 0.
type FixedSource struct {
	tokens []Token
	// Number of times Next has been called.
	index int
}

// NewFixedSource constructs a source which replays the given tokens in order.
func NewFixedSource(tokens ...Token) *FixedSource {
	return &FixedSource{tokens, 0}
}

// Next implementation for the Source interface.
func (p *FixedSource) Next() util.Option[Token] {
	if p.index < len(p.tokens) {
		p.index++
		return util.Some(p.tokens[p.index-1])
	}
	// Record that we've gone beyond the end
	p.index = len(p.tokens) + 1
	//
	return util.None[Token]()
}

// Current implementation for the Source interface.
func (p *FixedSource) Current() util.Option[Token] {
	if p.index == 0 || p.index > len(p.tokens) {
		return util.None[Token]()
	}
	//
	return util.Some(p.tokens[p.index-1])
}

// Line implementation for the Source interface.
func (p *FixedSource) Line() int {
	return 0
}

// Column implementation for the Source interface.
func (p *FixedSource) Column() int {
	return 0
}
