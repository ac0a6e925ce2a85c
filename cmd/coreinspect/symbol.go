// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSymbolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbol <corefile> <name>",
		Short: "Look up a constant, function, or variable symbol by name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openCore(args[0])
			if err != nil {
				return err
			}
			sym, err := p.Index(args[1])
			if err != nil {
				return err
			}
			switch {
			case sym.Value != nil:
				fmt.Printf("%s = %d (constant)\n", args[1], *sym.Value)
			case sym.Address != nil:
				fmt.Printf("%s @ %#x\n", args[1], *sym.Address)
			default:
				fmt.Printf("%s: %+v\n", args[1], sym)
			}
			return nil
		},
	}
	return cmd
}
