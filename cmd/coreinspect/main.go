// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Coreinspect is a command-line tool for exploring an ELF core dump
// against the Program handle in github.com/corescope/core/program:
// reading memory, resolving C type spellings, and looking up symbols.
// Run "coreinspect help" for a list of commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corescope/core/elfcore"
	"github.com/corescope/core/program"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coreinspect",
		Short: "Explore an ELF core dump",
	}
	root.AddCommand(newReadCmd())
	root.AddCommand(newTypeCmd())
	root.AddCommand(newSymbolCmd())
	root.AddCommand(newReplCmd())
	return root
}

// openCore loads an ELF core file into a Program, the step every
// subcommand needs up front.
func openCore(path string) (*program.Program, error) {
	records, a, err := elfcore.Load(path)
	if err != nil {
		return nil, err
	}
	p := program.New(a)
	if err := p.LoadCore(records); err != nil {
		return nil, err
	}
	return p, nil
}
