// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"github.com/corescope/core/coreerr"
	"github.com/corescope/core/ctype"
)

// Finder resolves a (name, flags, filename) triple into a Symbol, or
// returns (nil, nil) to mean "I don't have it, ask the next finder."
type Finder func(name string, flags FindObjectFlags, filename string) (*Symbol, error)

// Index is the SymbolIndex: a registration-ordered chain of finders,
// consulted for every lookup. It holds no symbols itself.
type Index struct {
	finders []Finder
}

func NewIndex() *Index {
	return &Index{}
}

// AddSymbolFinder registers fn at the end of the finder chain.
func (idx *Index) AddSymbolFinder(fn Finder) {
	idx.finders = append(idx.finders, fn)
}

// Symbol resolves name against the finder chain, accepting only a result
// whose classification intersects flags. A finder's result classifying
// outside flags is a hard TypeError, not a skip: the finder claimed the
// name, so it must also get the kind right.
func (idx *Index) Symbol(name string, flags FindObjectFlags, filename string) (*Symbol, error) {
	for _, f := range idx.finders {
		sym, err := f(name, flags, filename)
		if err != nil {
			return nil, err
		}
		if sym == nil {
			continue
		}
		if classify(sym)&flags == 0 {
			return nil, coreerr.NewType("symbol %q has wrong kind", name)
		}
		return sym, nil
	}
	if filename != "" {
		return nil, coreerr.NewLookup("could not find symbol '%s' in '%s'", name, filename)
	}
	return nil, coreerr.NewLookup("could not find symbol '%s'", name)
}

// Contains reports whether a symbol of any kind exists for name. It
// swallows the not-found case (the only way this differs from a regular
// lookup) but still propagates errors raised by a finder or a kind
// mismatch.
func (idx *Index) Contains(name string) (bool, error) {
	_, err := idx.Symbol(name, Any, "")
	if err == nil {
		return true, nil
	}
	if isLookupMiss(err) {
		return false, nil
	}
	return false, err
}

func isLookupMiss(err error) bool {
	_, ok := err.(*coreerr.Lookup)
	return ok
}

// Constant looks up name, requiring it to classify as Constant.
func (idx *Index) Constant(name string, filename string) (*Symbol, error) {
	sym, err := idx.Symbol(name, Constant, filename)
	if err != nil {
		return nil, wrapThing(err, "constant", name, filename)
	}
	return sym, nil
}

// Function looks up name, requiring it to classify as Function.
func (idx *Index) Function(name string, filename string) (*Symbol, error) {
	sym, err := idx.Symbol(name, Function, filename)
	if err != nil {
		return nil, wrapThing(err, "function", name, filename)
	}
	return sym, nil
}

// Variable looks up name, requiring it to classify as Variable.
func (idx *Index) Variable(name string, filename string) (*Symbol, error) {
	sym, err := idx.Symbol(name, Variable, filename)
	if err != nil {
		return nil, wrapThing(err, "variable", name, filename)
	}
	return sym, nil
}

// Type looks up name (of any kind) and returns its Type.
func (idx *Index) Type(name string, filename string) (*ctype.Type, error) {
	sym, err := idx.Symbol(name, Any, filename)
	if err != nil {
		return nil, wrapThing(err, "type", name, filename)
	}
	return sym.Type, nil
}

// wrapThing rewrites a plain lookup miss into the "<thing>"-flavored
// message the convenience accessors promise; any other error (a kind
// mismatch, say) passes through unchanged.
func wrapThing(err error, thing, name, filename string) error {
	if !isLookupMiss(err) {
		return err
	}
	if filename != "" {
		return coreerr.NewLookup("could not find %s '%s' in '%s'", thing, name, filename)
	}
	return coreerr.NewLookup("could not find %s '%s'", thing, name)
}

// Index looks up name by key, the container-access path distinct from an
// explicit lookup call: a non-string key is a KeyError rather than a
// LookupError, and a miss is also a KeyError so callers can tell
// "looked up and it wasn't there" apart from "asked for the wrong kind of
// key entirely".
func (idx *Index) Index(key interface{}) (*Symbol, error) {
	name, ok := key.(string)
	if !ok {
		return nil, coreerr.NewKey("symbol index key must be a string")
	}
	sym, err := idx.Symbol(name, Any, "")
	if err != nil {
		if isLookupMiss(err) {
			return nil, coreerr.NewKey("no symbol named '%s'", name)
		}
		return nil, err
	}
	return sym, nil
}
