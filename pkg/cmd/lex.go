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

	"github.com/consensys/go-clanger/pkg/c/lexer"
	"github.com/consensys/go-clanger/pkg/c/token"
	"github.com/consensys/go-clanger/pkg/util/source"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex file.c",
	Short: "print the tokens of a C source file.",
	Long:  `Print the tokens of a C source file, one per row, along with their line and column.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		srcfile := readSourceFile(args[0])
		//
		if err := writeSourceTokens(os.Stdout, srcfile); err != nil {
			os.Exit(reportError(os.Stdout, err))
		}
	},
}

// Write a table of the tokens in a given source file.  Tokens up to any
// unknown text are written before the corresponding syntax error is returned.
func writeSourceTokens(out io.Writer, srcfile *source.File) error {
	var (
		stream = lexer.NewStream(srcfile)
		table  = newTable(out, "line", "col", "kind", "text")
		err    error
	)
	//
	for tok := stream.Next(); tok.HasValue(); tok = stream.Next() {
		next := tok.Unwrap()
		//
		if next.Kind == token.ILLEGAL {
			err = srcfile.SyntaxError(stream.Span(), token.DescribeIllegal(next.Text))
			break
		}
		//
		table.Append([]string{
			fmt.Sprintf("%d", stream.Line()),
			fmt.Sprintf("%d", stream.Column()),
			token.KindName(next.Kind),
			next.Text,
		})
	}
	//
	table.Render()
	//
	return err
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
