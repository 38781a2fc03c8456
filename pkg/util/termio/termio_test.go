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
package termio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnsiEscape(t *testing.T) {
	assert.Equal(t, "\033[31m", NewAnsiEscape().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[1;32m", BoldAnsiEscape().FgColour(TERM_GREEN).Build())
	assert.Equal(t, "\033[1;33m", BoldAnsiEscape().FgColour(TERM_YELLOW).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
}

func TestHighlighter(t *testing.T) {
	always, err := NewHighlighter(nil, COLOUR_ALWAYS)
	require.NoError(t, err)
	never, err := NewHighlighter(nil, COLOUR_NEVER)
	require.NoError(t, err)
	auto, err := NewHighlighter(nil, COLOUR_AUTO)
	require.NoError(t, err)
	//
	assert.Equal(t, "\033[31mret\033[0m", always.Colour("ret", TERM_RED))
	assert.Equal(t, "\033[1mret\033[0m", always.Bold("ret"))
	assert.Equal(t, "ret", never.Colour("ret", TERM_RED))
	assert.Equal(t, "ret", auto.Colour("ret", TERM_RED))
	//
	_, err = NewHighlighter(nil, "sometimes")
	assert.Error(t, err)
}
