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

// Function is a named function whose body consists of exactly one statement.
// Functions take no parameters and return an int.
type Function struct {
	Name string
	Body Stmt
}

// NewFunction constructs a new function.  The name must be a non-empty
// identifier.
func NewFunction(name string, body Stmt) *Function {
	if name == "" {
		panic("function requires a name")
	}
	//
	return &Function{name, body}
}

// Equals checks whether two functions are structurally identical.
func (p *Function) Equals(o *Function) bool {
	return p.Name == o.Name && p.Body.Equals(o.Body)
}

func (p *Function) String() string {
	return fmt.Sprintf("int %s() {\n\t%s\n}", p.Name, p.Body.String())
}

// Program is a complete translation unit, consisting of exactly one function
// (conventionally "main").
type Program struct {
	Function *Function
}

// NewProgram constructs a program from its only function.
func NewProgram(fn *Function) *Program {
	return &Program{fn}
}

// Equals checks whether two programs are structurally identical.
func (p *Program) Equals(o *Program) bool {
	return p.Function.Equals(o.Function)
}

func (p *Program) String() string {
	return p.Function.String()
}
