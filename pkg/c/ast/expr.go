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
package ast

import "fmt"

// Expr represents an arbitrary integer expression.  The set of expressions is
// closed: only types within this package implement it.
type Expr interface {
	fmt.Stringer
	// Equals checks whether two expressions are structurally identical.
	Equals(e Expr) bool
	// seal the interface
	isExpr()
}

// Operator identifies a unary operator.
type Operator uint8

const (
	// NEGATION is arithmetic negation, written "-e".
	NEGATION Operator = iota
	// BITWISE_COMPLEMENT is written "~e".
	BITWISE_COMPLEMENT
	// LOGICAL_NEGATION is written "!e", and yields either 0 or 1.
	LOGICAL_NEGATION
)

func (op Operator) String() string {
	switch op {
	case NEGATION:
		return "-"
	case BITWISE_COMPLEMENT:
		return "~"
	case LOGICAL_NEGATION:
		return "!"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Depth returns the number of unary operators applied above the innermost
// constant of a given expression.
func Depth(e Expr) uint {
	var depth uint
	//
	for {
		switch ee := e.(type) {
		case *UnaryOp:
			depth++
			e = ee.Operand
		default:
			return depth
		}
	}
}
