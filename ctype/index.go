// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctype

import (
	"github.com/corescope/core/coreerr"
)

// Finder resolves a (kind, name, filename) triple into a Type, or returns
// (nil, nil) to mean "I don't have it, ask the next finder."
type Finder func(kind Kind, name string, filename string) (*Type, error)

// Index is the TypeIndex: it parses C type spellings and resolves them
// against a registration-ordered chain of finders, synthesizing primitive
// types itself when no finder overrides the default.
type Index struct {
	wordSize int
	finders  []Finder
}

// NewIndex creates a TypeIndex for an architecture with the given word
// size (4 or 8), used to resolve "word"-sized primitives (long, size_t,
// ptrdiff_t) and pointer sizes.
func NewIndex(wordSize int) *Index {
	return &Index{wordSize: wordSize}
}

// SetWordSize updates the word size used to resolve word-sized primitives
// (long, size_t, ptrdiff_t) and pointer sizes, without disturbing the
// registered finder chain. This supports the AUTO/HOST architecture
// transition: a Program created before attaching to a live process may
// need to re-resolve its word size once the host architecture is known.
func (idx *Index) SetWordSize(wordSize int) {
	idx.wordSize = wordSize
}

// AddTypeFinder registers fn at the end of the finder chain. Finders
// accumulate; they are never replaced or removed.
func (idx *Index) AddTypeFinder(fn Finder) {
	idx.finders = append(idx.finders, fn)
}

// Type resolves a C type spelling, consulting finders for everything but
// primitive defaults and void. filename, if non-empty, is passed to
// finders and included in lookup-error messages.
func (idx *Index) Type(spelling string, filename string) (*Type, error) {
	spec, quals, d, err := parseSpelling(spelling, idx.wordSize)
	if err != nil {
		return nil, err
	}
	base, err := idx.resolveBase(spec, filename)
	if err != nil {
		return nil, err
	}
	if quals != 0 {
		base = base.WithQualifiers(base.Qual | quals)
	}
	return d(base), nil
}

// PointerType constructs a pointer to base, which may be a *Type or a
// string spelling to be resolved first.
func (idx *Index) PointerType(base interface{}, quals Qualifiers) (*Type, error) {
	var t *Type
	switch b := base.(type) {
	case *Type:
		t = b
	case string:
		resolved, err := idx.Type(b, "")
		if err != nil {
			return nil, err
		}
		t = resolved
	default:
		return nil, coreerr.NewType("pointer base must be a Type or a type spelling string")
	}
	return PointerType(int64(idx.wordSize), t, quals), nil
}

func (idx *Index) resolveBase(spec baseSpec, filename string) (*Type, error) {
	switch spec.kind {
	case Void:
		return VoidType(), nil
	case Int, Bool, Float:
		return idx.resolvePrimitive(spec.primitive, filename)
	case Struct, Union, Enum:
		return idx.resolveFromFinders(spec.kind, spec.tag, filename, canonicalTag(spec.kind, spec.tag))
	case Typedef:
		if spec.typedef == "size_t" {
			return idx.resolveWordTypedef("size_t", sizeTCandidates, filename)
		}
		if spec.typedef == "ptrdiff_t" {
			return idx.resolveWordTypedef("ptrdiff_t", ptrdiffTCandidates, filename)
		}
		return idx.resolveFromFinders(Typedef, spec.typedef, filename, "typedef "+spec.typedef)
	}
	return nil, coreerr.NewType("unhandled type specifier kind %v", spec.kind)
}

func canonicalTag(kind Kind, tag string) string {
	switch kind {
	case Struct:
		return "struct " + tag
	case Union:
		return "union " + tag
	case Enum:
		return "enum " + tag
	}
	return tag
}

// resolveFromFinders walks the finder chain for a non-primitive request
// (tag types and ordinary typedefs). The first non-nil result wins; a
// result of the wrong Kind is a TypeError, not silently skipped.
func (idx *Index) resolveFromFinders(kind Kind, name string, filename string, canonical string) (*Type, error) {
	for _, f := range idx.finders {
		t, err := f(kind, name, filename)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		if t.Kind != kind {
			return nil, coreerr.NewType("type finder returned kind %v for %q, want %v", t.Kind, canonical, kind)
		}
		return t, nil
	}
	if filename != "" {
		return nil, coreerr.NewLookup("could not find '%s' in '%s'", canonical, filename)
	}
	return nil, coreerr.NewLookup("could not find '%s'", canonical)
}

// resolvePrimitive implements primitive resolution precedence: finders are
// consulted first; a finder whose result has the wrong Kind fails hard, a
// finder whose result has the right Kind but a mismatched name or
// signedness is silently skipped (not rejected), and a size mismatch alone
// is accepted, since architectures can give long a non-default size. If no
// finder gives an accepted result, the synthesized default wins.
//
// This asymmetry (size mismatches tolerated, signedness mismatches are
// not) is inherited as-is from the source project.
func (idx *Index) resolvePrimitive(canonical string, filename string) (*Type, error) {
	var kind Kind
	var signed bool
	for _, f := range primitiveFamilies {
		if f.canonical == canonical {
			kind, signed = f.kind, f.signed
			break
		}
	}
	for _, f := range idx.finders {
		t, err := f(kind, canonical, filename)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		if t.Kind != kind {
			return nil, coreerr.NewType("type finder returned kind %v for %q, want %v", t.Kind, canonical, kind)
		}
		if t.Name != canonical {
			continue
		}
		if kind == Int && t.IsSigned != signed {
			continue
		}
		return t, nil
	}
	return defaultPrimitive(canonical, idx.wordSize), nil
}

// resolveWordTypedef implements the size_t/ptrdiff_t selection algorithm:
// the first candidate integer type whose resolved size equals the word
// size wins.
func (idx *Index) resolveWordTypedef(name string, candidates []string, filename string) (*Type, error) {
	for _, cand := range candidates {
		t, err := idx.resolvePrimitive(cand, filename)
		if err != nil {
			return nil, err
		}
		if int(t.Size) == idx.wordSize {
			return TypedefType(name, t), nil
		}
	}
	return nil, coreerr.NewValue("no suitable integer type for %s", name)
}
