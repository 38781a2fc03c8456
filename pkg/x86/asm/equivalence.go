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

	"github.com/consensys/go-clanger/pkg/util"
)

// Mismatch describes the first point at which two pieces of assembly text
// diverge structurally.
type Mismatch struct {
	// Index of the first differing token
	Index int
	// Token found in the actual text at Index, or None if it ended.
	Actual util.Option[Token]
	// Token found in the expected text at Index, or None if it ended.
	Expected util.Option[Token]
	// Line of the differing token in each text (0 if it ended).
	ActualLine, ExpectedLine int
	// Errors which stopped either text being tokenized completely.
	ActualErr, ExpectedErr error
	// The original texts
	ActualText, ExpectedText string
}

// Compare checks whether two pieces of assembly text are structurally
// equivalent.  That is, they tokenize completely to sequences of the same
// length whose tokens are pairwise equal.  If so, nil is returned.  Otherwise
// the first point of divergence is described.  A text with extra trailing
// tokens, or which fails to tokenize, is never equivalent.
func Compare(actual string, expected string) *Mismatch {
	var (
		lhs = NewTokenizer(actual)
		rhs = NewTokenizer(expected)
	)
	//
	for index := 0; ; index++ {
		var (
			a, aLine = next(lhs)
			e, eLine = next(rhs)
		)
		//
		if a != e || (a.IsEmpty() && (lhs.Err() != nil || rhs.Err() != nil)) {
			return &Mismatch{index, a, e, aLine, eLine, lhs.Err(), rhs.Err(), actual, expected}
		} else if a.IsEmpty() {
			return nil
		}
	}
}

// Equivalent checks whether two pieces of assembly text are structurally
// equivalent.
func Equivalent(actual string, expected string) bool {
	return Compare(actual, expected) == nil
}

func next(tokenizer *Tokenizer) (util.Option[Token], int) {
	if tokenizer.HasNext() {
		token := tokenizer.Next()
		return util.Some(token), tokenizer.Line()
	}
	//
	return util.None[Token](), 0
}

// Summary gives a one-line description of this mismatch.
func (m *Mismatch) Summary() string {
	return fmt.Sprintf("assembly not equal at token %d: got %s, expected %s",
		m.Index, describe(m.Actual, m.ActualLine, m.ActualErr), describe(m.Expected, m.ExpectedLine, m.ExpectedErr))
}

// Error implements the error interface, including both original texts.
func (m *Mismatch) Error() string {
	var builder strings.Builder
	//
	builder.WriteString(m.Summary())
	builder.WriteString(":\n\n")
	builder.WriteString(m.ActualText)
	builder.WriteString("\n\ndoes not equal expected:\n\n")
	builder.WriteString(m.ExpectedText)
	builder.WriteString("\n")
	//
	return builder.String()
}

func describe(token util.Option[Token], line int, err error) string {
	switch {
	case token.HasValue():
		return fmt.Sprintf("%s (line %d)", token.Unwrap().String(), line)
	case err != nil:
		return err.Error()
	default:
		return "end of input"
	}
}
