// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	var physical bool
	cmd := &cobra.Command{
		Use:   "read <corefile> <address> <count>",
		Short: "Read a chunk of memory from a core file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openCore(args[0])
			if err != nil {
				return err
			}
			address, err := strconv.ParseUint(args[1], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid address %q: %v", args[1], err)
			}
			count, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid count %q: %v", args[2], err)
			}
			data, err := p.Read(address, count, physical)
			if err != nil {
				return err
			}
			fmt.Print(hex.Dump(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&physical, "physical", false, "read the physical address plane instead of virtual")
	return cmd
}
