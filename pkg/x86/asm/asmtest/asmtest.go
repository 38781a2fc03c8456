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
package asmtest

import (
	"testing"

	"github.com/consensys/go-clanger/pkg/x86/asm"
	"github.com/stretchr/testify/assert"
)

// AssertEquivalent fails the test unless the actual assembly text is
// structurally equivalent to the expected text, ignoring any differences in
// whitespace or indentation.
func AssertEquivalent(t testing.TB, actual string, expected string, msgAndArgs ...any) bool {
	t.Helper()
	//
	if mismatch := asm.Compare(actual, expected); mismatch != nil {
		return assert.Fail(t, mismatch.Error(), msgAndArgs...)
	}
	//
	return true
}

// AssertNotEquivalent fails the test if the actual assembly text is
// structurally equivalent to the expected text.
func AssertNotEquivalent(t testing.TB, actual string, expected string, msgAndArgs ...any) bool {
	t.Helper()
	//
	if asm.Equivalent(actual, expected) {
		return assert.Fail(t, "assembly unexpectedly equivalent:\n\n"+actual, msgAndArgs...)
	}
	//
	return true
}
