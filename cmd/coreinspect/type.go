// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <corefile> <spelling>",
		Short: "Resolve a C type spelling against a core file's types",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openCore(args[0])
			if err != nil {
				return err
			}
			t, err := p.Type(args[1], args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%+v\n", t)
			return nil
		},
	}
	return cmd
}
