// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coreerr defines the error taxonomy shared by the memory, ctype,
// symbol, and program packages. Each kind is a distinct type so callers can
// distinguish them with errors.As, but every kind also wraps a plain message
// the way the rest of the pack builds errors with fmt.Errorf.
package coreerr

import "fmt"

// Fault is raised when a memory read touches a byte not covered by any
// registered segment.
type Fault struct {
	Address uint64
	msg     string
}

func NewFault(address uint64, msg string) *Fault {
	return &Fault{Address: address, msg: msg}
}

func (e *Fault) Error() string { return e.msg }

// Lookup is raised when a type or symbol finder chain returns nothing for
// the requested name.
type Lookup struct {
	msg string
}

func NewLookup(format string, args ...interface{}) *Lookup {
	return &Lookup{msg: fmt.Sprintf(format, args...)}
}

func (e *Lookup) Error() string { return e.msg }

// Key is raised when a Program is indexed by a key with no matching symbol.
// It is textually a superset of Lookup but a distinct type so a caller can
// tell container-style access (prog[key]) apart from an explicit lookup
// call (prog.Variable(name)).
type Key struct {
	msg string
}

func NewKey(format string, args ...interface{}) *Key {
	return &Key{msg: fmt.Sprintf(format, args...)}
}

func (e *Key) Error() string { return e.msg }

// Type is raised when a finder returns a value of the wrong shape (wrong
// type-kind or symbol kind), when a pointer base is neither a Type nor a
// spelling, or when a type spelling does not parse.
type Type struct {
	msg string
}

func NewType(format string, args ...interface{}) *Type {
	return &Type{msg: fmt.Sprintf(format, args...)}
}

func (e *Type) Error() string { return e.msg }

// Value is raised for malformed-but-type-correct inputs: a read callback
// returning the wrong length, a second attempt to bind a Program's memory
// source, or a size_t/ptrdiff_t selection with no matching candidate type.
type Value struct {
	msg string
}

func NewValue(format string, args ...interface{}) *Value {
	return &Value{msg: fmt.Sprintf(format, args...)}
}

func (e *Value) Error() string { return e.msg }

// FileFormat is raised when a file handed to the core-dump loader doesn't
// even parse as an ELF file.
type FileFormat struct {
	msg string
}

func NewFileFormat(format string, args ...interface{}) *FileFormat {
	return &FileFormat{msg: fmt.Sprintf(format, args...)}
}

func (e *FileFormat) Error() string { return e.msg }
