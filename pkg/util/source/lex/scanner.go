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
package lex

import (
	"cmp"
	"unicode"
)

// Scanner is a function which accepts some prefix of the given items,
// returning how many were consumed.  A return of zero indicates no match.
type Scanner[T any] func(items []T) uint

// And combines zero or more scanners such that the resulting scanner succeeds if
// all of the scanners succeed.  The longest match is reported.
func And[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)

		for _, scanner := range scanners {
			m := scanner(items)
			if m == 0 {
				// fail
				return 0
			}
			//
			n = max(n, m)
		}
		//
		return n
	}
}

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe, however, that there is an implicit
// left-to-right order of evaluation.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of items.  That is, for this scanner to match,
// it must match all the given items (one after the other) in their given order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i := range chars {
			if items[i] != chars[i] {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// String accepts exactly the given string.
func String(s string) Scanner[rune] {
	return Unit([]rune(s)...)
}

// Within accepts any item within a given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Satisfies accepts any single item for which a given predicate holds.
func Satisfies[T any](pred func(T) bool) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && pred(items[0]) {
			return 1
		}
		//
		return 0
	}
}

// Space accepts any single whitespace character, as determined by
// unicode.IsSpace.
func Space() Scanner[rune] {
	return Satisfies(unicode.IsSpace)
}

// Many matches zero or more of a given item.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := acceptor(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// Until matches everything up to (but not including) a particular item.
func Until[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) && items[index] != item {
			index++
		}
		//
		return index
	}
}

// Through matches everything up to and including the first occurrence of the
// given terminator.  If the terminator never occurs, there is no match.
func Through[T comparable](terminator ...T) Scanner[T] {
	terminate := Unit(terminator...)
	//
	return func(items []T) uint {
		for i := range items {
			if n := terminate(items[i:]); n > 0 {
				return uint(i) + n
			}
		}
		//
		return 0
	}
}

// Eof matches the end of the input stream.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}

// Sequence matches all the scanners in order.  Each scanner consumes the input
// right after the previous one ends, and every scanner must consume something.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for _, scanner := range scanners {
			if n == uint(len(items)) {
				return 0
			}
			//
			m := scanner(items[n:])
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// SequenceNullableLast is like Sequence, except that the final scanner is
// permitted to match nothing.
func SequenceNullableLast[T any](scanners ...Scanner[T]) Scanner[T] {
	var (
		n    = len(scanners)
		head = Sequence(scanners[:n-1]...)
		last = scanners[n-1]
	)
	//
	return func(items []T) uint {
		if m := head(items); m > 0 {
			return m + last(items[m:])
		}
		//
		return 0
	}
}
