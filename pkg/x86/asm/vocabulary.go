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

import "fmt"

// Directive identifies an assembler directive.
type Directive uint8

// GLOBL marks a symbol as visible to the linker.
const GLOBL Directive = 0

var directiveNames = []string{".globl"}

// Keyword identifies an instruction mnemonic.
type Keyword uint8

const (
	// MOVL moves a 32-bit value.
	MOVL Keyword = iota
	// RET returns from the current function.
	RET
	// NEG negates in place.
	NEG
	// NOT complements in place.
	NOT
	// CMPL compares two 32-bit values.
	CMPL
	// SETE sets a byte to 1 if the last comparison was equal, else 0.
	SETE
	// PUSH pushes onto the stack.
	PUSH
	// POP pops from the stack.
	POP
	// ADDL adds two 32-bit values.
	ADDL
	// IMUL performs signed multiplication.
	IMUL
	// SUBL subtracts two 32-bit values.
	SUBL
	// IDIVL performs signed division.
	IDIVL
)

var keywordNames = []string{"movl", "ret", "neg", "not", "cmpl", "sete", "push", "pop", "addl", "imul", "subl", "idivl"}

// Register identifies a machine register (without its "%" prefix).
type Register uint8

const (
	// EAX is the 32-bit accumulator.
	EAX Register = iota
	// AL is the low byte of the accumulator.
	AL
	// ECX is the 32-bit counter register.
	ECX
)

var registerNames = []string{"eax", "al", "ecx"}

// Punctuation identifies an operand separator.
type Punctuation uint8

const (
	// COMMA separates operands.
	COMMA Punctuation = iota
	// COLON terminates a label.
	COLON
)

var punctuationNames = []string{",", ":"}

func (d Directive) String() string   { return nameOf(directiveNames, d) }
func (k Keyword) String() string     { return nameOf(keywordNames, k) }
func (r Register) String() string    { return nameOf(registerNames, r) }
func (p Punctuation) String() string { return nameOf(punctuationNames, p) }

// Directives returns every recognised directive.
func Directives() []Directive { return all[Directive](directiveNames) }

// Keywords returns every recognised mnemonic.
func Keywords() []Keyword { return all[Keyword](keywordNames) }

// Registers returns every recognised register.
func Registers() []Register { return all[Register](registerNames) }

// ParseDirective looks up a directive by its spelling (e.g. ".globl").
func ParseDirective(s string) (Directive, bool) { return lookup[Directive](directiveNames, s) }

// ParseKeyword looks up a mnemonic by its spelling (e.g. "movl").
func ParseKeyword(s string) (Keyword, bool) { return lookup[Keyword](keywordNames, s) }

// ParseRegister looks up a register by its name without the "%" prefix.
func ParseRegister(s string) (Register, bool) { return lookup[Register](registerNames, s) }

// ParsePunctuation looks up a single punctuation character.
func ParsePunctuation(s string) (Punctuation, bool) { return lookup[Punctuation](punctuationNames, s) }

func nameOf[T ~uint8](names []string, item T) string {
	if int(item) < len(names) {
		return names[item]
	}
	//
	return fmt.Sprintf("unknown(%d)", uint8(item))
}

func lookup[T ~uint8](names []string, s string) (T, bool) {
	for i, name := range names {
		if name == s {
			return T(i), true
		}
	}
	//
	return 0, false
}

func all[T ~uint8](names []string) []T {
	items := make([]T, len(names))
	for i := range names {
		items[i] = T(i)
	}
	//
	return items
}
