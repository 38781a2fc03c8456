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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-clanger/pkg/util/source"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	return r
}

// GetString gets an expectation string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	return r
}

// Read a given source file, or exit if this fails.
func readSourceFile(filename string) *source.File {
	log.Debugf("reading source file %s", filename)
	//
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_IO)
	}
	//
	return srcfile
}

// Report an error arising from a source file, highlighting the offending text
// for syntax errors.  The appropriate exit code is returned.
func reportError(out io.Writer, err error) int {
	var syntaxError *source.SyntaxError
	//
	if errors.As(err, &syntaxError) {
		printSyntaxError(out, syntaxError)
		return EXIT_SYNTAX
	}
	//
	log.Error(err)
	//
	return EXIT_IO
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", length))
}

// Construct a plain, borderless table with a given header.
func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	//
	return table
}
