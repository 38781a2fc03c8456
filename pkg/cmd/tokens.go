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

	"github.com/consensys/go-clanger/pkg/x86/asm"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens file.s",
	Short: "print the tokens of an assembly file.",
	Long:  `Print the tokens of an x86 assembly file (AT&T syntax), one per row, along with their line.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := readAssemblyFile(args[0])
		//
		if err := writeAssemblyTokens(os.Stdout, text); err != nil {
			fmt.Printf("%s: %s\n", args[0], err.Error())
			os.Exit(EXIT_SYNTAX)
		}
	},
}

// Write a table of the tokens in some assembly text.  Tokens up to any
// unrecognised lexeme are written before the error is returned.
func writeAssemblyTokens(out io.Writer, text string) error {
	var (
		tokenizer = asm.NewTokenizer(text)
		table     = newTable(out, "line", "class", "text")
	)
	//
	for tokenizer.HasNext() {
		tok := tokenizer.Next()
		//
		table.Append([]string{fmt.Sprintf("%d", tokenizer.Line()), tok.Class().String(), tok.Text()})
	}
	//
	table.Render()
	//
	return tokenizer.Err()
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
