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
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-clanger/pkg/util/termio"
	"github.com/consensys/go-clanger/pkg/x86/asm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] actual.s expected.s",
	Short: "check two assembly files are structurally equivalent.",
	Long: `Check whether two x86 assembly files (AT&T syntax) tokenize to the same
sequence of tokens, ignoring whitespace and comments.  On mismatch, the first
differing token is reported alongside the lines of both files.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			colour   = GetString(cmd, "colour")
			actual   = readAssemblyFile(args[0])
			expected = readAssemblyFile(args[1])
		)
		//
		highlighter, err := termio.NewHighlighter(os.Stdout, colour)
		if err != nil {
			fmt.Println(err)
			os.Exit(EXIT_USAGE)
		}
		//
		if mismatch := asm.Compare(actual, expected); mismatch != nil {
			printMismatch(os.Stdout, highlighter, args[0], args[1], mismatch)
			os.Exit(EXIT_MISMATCH)
		}
		//
		log.Debugf("%s and %s are equivalent", args[0], args[1])
	},
}

func readAssemblyFile(filename string) string {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_IO)
	}
	//
	return string(bytes)
}

// Print a mismatch, showing the offending line from each file.
func printMismatch(out io.Writer, h termio.Highlighter, actualFile, expectedFile string, m *asm.Mismatch) {
	fmt.Fprintln(out, h.Bold(m.Summary()))
	fmt.Fprintln(out)
	printMismatchLine(out, h, actualFile, m.ActualText, m.ActualLine, termio.TERM_RED)
	printMismatchLine(out, h, expectedFile, m.ExpectedText, m.ExpectedLine, termio.TERM_GREEN)
}

func printMismatchLine(out io.Writer, h termio.Highlighter, filename, text string, line int, colour uint) {
	lines := strings.Split(text, "\n")
	//
	if line < 1 || line > len(lines) {
		location := h.Colour(filename+":", termio.TERM_YELLOW)
		fmt.Fprintf(out, "%s %s\n", location, h.Colour("<end of input>", colour))
	} else {
		location := h.Colour(fmt.Sprintf("%s:%d:", filename, line), termio.TERM_YELLOW)
		fmt.Fprintf(out, "%s %s\n", location, h.Colour(lines[line-1], colour))
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("colour", termio.COLOUR_AUTO, "colour output (auto, always or never)")
}
