// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/corescope/core/program"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl <corefile>",
		Short: "Start an interactive session against a core file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openCore(args[0])
			if err != nil {
				return err
			}
			return runRepl(p, args[0])
		},
	}
}

func runRepl(p *program.Program, corefile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "coreinspect> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %v", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		err = runReplCommand(p, corefile, line)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintln(rl.Stderr(), err)
		}
	}
}

// runReplCommand dispatches one REPL line. The grammar mirrors the CLI
// subcommands minus the corefile argument, which the REPL already has
// open: "read <addr> <count>", "type <spelling>", "symbol <name>", "quit".
func runReplCommand(p *program.Program, corefile, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return io.EOF
	case "read":
		if len(fields) != 3 {
			return fmt.Errorf("usage: read <address> <count>")
		}
		address, err := strconv.ParseUint(fields[1], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid address %q: %v", fields[1], err)
		}
		count, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("invalid count %q: %v", fields[2], err)
		}
		data, err := p.Read(address, count, false)
		if err != nil {
			return err
		}
		fmt.Printf("% x\n", data)
		return nil
	case "type":
		if len(fields) < 2 {
			return fmt.Errorf("usage: type <spelling>")
		}
		t, err := p.Type(strings.Join(fields[1:], " "), corefile)
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", t)
		return nil
	case "symbol":
		if len(fields) != 2 {
			return fmt.Errorf("usage: symbol <name>")
		}
		sym, err := p.Index(fields[1])
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", sym)
		return nil
	}
	return fmt.Errorf("unknown command %q", fields[0])
}
