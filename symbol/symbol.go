// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol implements the SymbolIndex: a name+kind lookup over a
// chain of caller-supplied finders, mirroring the linear-scan lookup shape
// golang-debug's debug/dwarf.LookupFunction and friends use against a
// DWARF reader, generalized here to an arbitrary finder chain.
package symbol

import (
	"encoding/binary"

	"github.com/corescope/core/ctype"
)

// FindObjectFlags classifies what a symbol lookup will accept.
type FindObjectFlags uint8

const (
	Constant FindObjectFlags = 1 << iota
	Function
	Variable

	Any = Constant | Function | Variable
)

// Symbol is a resolved name: exactly one of Value (for constants and
// enumerators) and Address (for variables and functions) is meaningful.
// ByteOrder is required whenever Address is set, since a caller reading
// the variable's bytes needs to know how to decode them.
type Symbol struct {
	Type         *ctype.Type
	Value        *int64
	Address      *uint64
	IsEnumerator bool
	ByteOrder    binary.ByteOrder
}

// classify determines the FindObjectFlags a Symbol satisfies. Exactly one
// flag is ever true for a given Symbol.
func classify(sym *Symbol) FindObjectFlags {
	if sym.Value != nil || sym.IsEnumerator {
		return Constant
	}
	if sym.Address != nil && sym.Type != nil && sym.Type.Kind == ctype.Function {
		return Function
	}
	return Variable
}
