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

// UnaryOp represents a unary operator applied to a subexpression.
type UnaryOp struct {
	Operator Operator
	Operand  Expr
}

// NewUnaryOp constructs an expression applying a given operator to an operand.
func NewUnaryOp(op Operator, operand Expr) Expr {
	return &UnaryOp{op, operand}
}

// Equals implementation for the Expr interface.
func (p *UnaryOp) Equals(e Expr) bool {
	if e, ok := e.(*UnaryOp); ok {
		return p.Operator == e.Operator && p.Operand.Equals(e.Operand)
	}
	//
	return false
}

func (p *UnaryOp) String() string {
	operand := p.Operand.String()
	// Avoid "--x" reading as a decrement
	if p.Operator == NEGATION && len(operand) > 0 && operand[0] == '-' {
		return "-(" + operand + ")"
	}
	//
	return p.Operator.String() + operand
}

func (p *UnaryOp) isExpr() {}
