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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-clanger/pkg/compiler"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.c",
	Short: "compile a C source file into x86 assembly.",
	Long: `Compile a given C source file into x86 assembly (AT&T syntax).  The
assembly is written to standard output unless an output file is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			printAst = GetFlag(cmd, "ast")
			output   = GetString(cmd, "output")
			srcfile  = readSourceFile(args[0])
		)
		// Parse source file, or print errors
		program, err := compiler.ParseSourceFile(srcfile)
		if err != nil {
			os.Exit(reportError(os.Stdout, err))
		}
		//
		if printAst {
			fmt.Println(program.String())
			return
		}
		// Generate assembly
		if err := writeOutput(output, func(w io.Writer) error {
			return compiler.Generate(program, w)
		}); err != nil {
			log.Error(err)
			os.Exit(EXIT_IO)
		}
	},
}

// Write output either to a given file or, when no filename is given, to
// standard output.  An output file is removed again if anything fails, so a
// truncated file is never left behind.
func writeOutput(filename string, fn func(io.Writer) error) error {
	if filename == "" {
		return writeBuffered(os.Stdout, fn)
	}
	//
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	//
	err = errors.Join(writeBuffered(file, fn), file.Close())
	//
	if err != nil {
		if rerr := os.Remove(filename); rerr != nil {
			log.Errorf("removing %s: %s", filename, rerr)
		}
	}
	//
	return err
}

func writeBuffered(out *os.File, fn func(io.Writer) error) error {
	writer := bufio.NewWriter(out)
	//
	if err := fn(writer); err != nil {
		return err
	}
	//
	log.Debugf("writing output to %s", out.Name())
	//
	return writer.Flush()
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Bool("ast", false, "print the abstract syntax tree instead of assembly")
	compileCmd.Flags().StringP("output", "o", "", "write assembly to this file")
}
