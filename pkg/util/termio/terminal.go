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
	"fmt"
	"os"

	"golang.org/x/term"
)

// COLOUR_AUTO enables colour only when writing to a terminal.
const COLOUR_AUTO = "auto"

// COLOUR_ALWAYS always enables colour.
const COLOUR_ALWAYS = "always"

// COLOUR_NEVER never enables colour.
const COLOUR_NEVER = "never"

// Highlighter applies ANSI formatting to text, or leaves it untouched when
// colour is disabled.
type Highlighter struct {
	enabled bool
}

// NewHighlighter constructs a highlighter for a given output file and colour
// mode (one of COLOUR_AUTO, COLOUR_ALWAYS or COLOUR_NEVER).
func NewHighlighter(out *os.File, mode string) (Highlighter, error) {
	switch mode {
	case COLOUR_ALWAYS:
		return Highlighter{true}, nil
	case COLOUR_NEVER:
		return Highlighter{false}, nil
	case COLOUR_AUTO:
		return Highlighter{IsTerminal(out)}, nil
	default:
		return Highlighter{}, fmt.Errorf("unknown colour mode \"%s\"", mode)
	}
}

// IsTerminal checks whether a given file is attached to a terminal.
func IsTerminal(out *os.File) bool {
	return out != nil && term.IsTerminal(int(out.Fd()))
}

// Colour formats text in a given foreground colour.
func (h Highlighter) Colour(text string, col uint) string {
	return h.apply(text, NewAnsiEscape().FgColour(col))
}

// Bold formats text in bold.
func (h Highlighter) Bold(text string) string {
	return h.apply(text, BoldAnsiEscape())
}

func (h Highlighter) apply(text string, escape AnsiEscape) string {
	if !h.enabled {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}
