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

// Stmt represents a statement within a function body.  As for expressions,
// the set of statements is closed.
type Stmt interface {
	fmt.Stringer
	// Equals checks whether two statements are structurally identical.
	Equals(s Stmt) bool
	// seal the interface
	isStmt()
}

// Return signals a return from the enclosing function, leaving the value of
// its expression as the function's result.
type Return struct {
	Expr Expr
}

// NewReturn constructs a return statement for a given expression.
func NewReturn(e Expr) Stmt {
	return &Return{e}
}

// Equals implementation for the Stmt interface.
func (p *Return) Equals(s Stmt) bool {
	if s, ok := s.(*Return); ok {
		return p.Expr.Equals(s.Expr)
	}
	//
	return false
}

func (p *Return) String() string {
	return fmt.Sprintf("return %s;", p.Expr.String())
}

func (p *Return) isStmt() {}
