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

import "strconv"

// IntegerConstant represents an integer literal.
type IntegerConstant struct {
	Value int32
}

// NewIntegerConstant constructs an expression representing a constant value.
func NewIntegerConstant(value int32) Expr {
	return &IntegerConstant{value}
}

// Equals implementation for the Expr interface.
func (p *IntegerConstant) Equals(e Expr) bool {
	if e, ok := e.(*IntegerConstant); ok {
		return p.Value == e.Value
	}
	//
	return false
}

func (p *IntegerConstant) String() string {
	return strconv.FormatInt(int64(p.Value), 10)
}

func (p *IntegerConstant) isExpr() {}
