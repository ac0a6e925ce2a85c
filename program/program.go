// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package program implements the Program handle: the single owning struct
// that binds together a MemoryMap, TypeIndex, and SymbolIndex and tracks
// the architecture and memory-source lifecycle described by the core's
// data model. Its shape (one struct aggregating the registries and a
// handful of lifecycle fields) follows golang-debug's internal/core.Process,
// adapted from a Go-runtime-specific core reader to a general one.
package program

import (
	"github.com/corescope/core/arch"
	"github.com/corescope/core/coreerr"
	"github.com/corescope/core/ctype"
	"github.com/corescope/core/memory"
	"github.com/corescope/core/symbol"
)

// memSource tracks which mutually exclusive path, if any, has committed
// memory to the Program. Manual segment registration never transitions
// this away from memSourceNone: it only guards against a second pid/core
// bind.
type memSource int

const (
	memSourceNone memSource = iota
	memSourceCore
	memSourcePID
)

// Program is the core's single owning handle: a Memory map, a Type index,
// and a Symbol index, plus the architecture and memory-source state that
// govern how they may be initialized.
type Program struct {
	Architecture arch.Architecture

	Memory  *memory.Map
	Types   *ctype.Index
	Symbols *symbol.Index

	memSource memSource
}

// New creates a Program for the given architecture, which may be
// arch.Auto to defer resolution until a live process is attached.
func New(a arch.Architecture) *Program {
	p := &Program{Architecture: a}
	p.Memory = &memory.Map{}
	p.Types = ctype.NewIndex(p.wordSize())
	p.Symbols = symbol.NewIndex()
	return p
}

// wordSize returns the best word size available so far: the resolved
// architecture's, or 8 as a working default before resolution (AUTO/HOST
// callers typically resolve before parsing any type spelling).
func (p *Program) wordSize() int {
	if p.Architecture.IsResolved() {
		return p.Architecture.WordSize()
	}
	return 8
}

// AddMemorySegment registers a manually-supplied segment. This is legal at
// any point before or after a pid/core bind's memory is committed, and
// never itself counts as "already initialized" for the purposes of a
// future pid/core bind.
func (p *Program) AddMemorySegment(address, length uint64, read memory.ReadFunc, physical bool) error {
	return p.Memory.AddSegment(address, length, read, physical)
}

// AddTypeFinder registers fn with the Program's TypeIndex.
func (p *Program) AddTypeFinder(fn ctype.Finder) {
	p.Types.AddTypeFinder(fn)
}

// AddSymbolFinder registers fn with the Program's SymbolIndex.
func (p *Program) AddSymbolFinder(fn symbol.Finder) {
	p.Symbols.AddSymbolFinder(fn)
}

// bindMemorySource enforces the core's memory-source exclusivity: a pid or
// core-dump bind may happen at most once per Program.
func (p *Program) bindMemorySource(source memSource) error {
	if p.memSource != memSourceNone {
		return coreerr.NewValue("program memory was already initialized")
	}
	p.memSource = source
	return nil
}

// ResolveHostArchitecture transitions an AUTO or HOST architecture to the
// concrete host architecture. It is a one-shot call, meant to run once
// when a live process is attached; calling it again is harmless (it just
// re-detects the same host), but most callers only need it on attach.
func (p *Program) ResolveHostArchitecture() error {
	host, err := arch.HostArchitecture()
	if err != nil {
		return err
	}
	p.Architecture = host
	p.Types.SetWordSize(p.wordSize())
	return nil
}

// Read reads count bytes at address from the Program's memory map.
func (p *Program) Read(address uint64, count int, physical bool) ([]byte, error) {
	return p.Memory.Read(address, count, physical)
}

// Type resolves a C type spelling against the Program's TypeIndex.
func (p *Program) Type(spelling string, filename string) (*ctype.Type, error) {
	return p.Types.Type(spelling, filename)
}

// Constant, Function, Variable, and SymbolType are the Program-level
// convenience accessors spec'd for the SymbolIndex, forwarded here since
// the Program is the handle callers actually hold.
func (p *Program) Constant(name string, filename string) (*symbol.Symbol, error) {
	return p.Symbols.Constant(name, filename)
}

func (p *Program) Function(name string, filename string) (*symbol.Symbol, error) {
	return p.Symbols.Function(name, filename)
}

func (p *Program) Variable(name string, filename string) (*symbol.Symbol, error) {
	return p.Symbols.Variable(name, filename)
}

func (p *Program) SymbolType(name string, filename string) (*ctype.Type, error) {
	return p.Symbols.Type(name, filename)
}

// Contains reports whether a symbol of any kind exists for name.
func (p *Program) Contains(name string) (bool, error) {
	return p.Symbols.Contains(name)
}

// Index implements the program[key] container-access path: a non-string
// key, or a miss, is a KeyError rather than a LookupError.
func (p *Program) Index(key interface{}) (*symbol.Symbol, error) {
	return p.Symbols.Index(key)
}
