// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctype

// primitiveFamily describes one row of the primitive-recognition table: a
// canonical spelling, the full token alphabet a spelling may be built
// from, and which of those tokens may be dropped.
type primitiveFamily struct {
	canonical string
	required  []string // tokens (as a multiset) that must all be present
	optional  []string // tokens that may additionally be dropped, any subset
	kind      Kind
	signed    bool // meaningful only when kind == Int
}

// wordSized is a sentinel size meaning "8 on a 64-bit architecture, else 4".
const wordSized = -1

var primitiveSizes = map[string]int64{
	"_Bool":               1,
	"char":                1,
	"signed char":         1,
	"unsigned char":       1,
	"short":               2,
	"unsigned short":      2,
	"int":                 4,
	"unsigned int":        4,
	"long":                wordSized,
	"unsigned long":       wordSized,
	"long long":           8,
	"unsigned long long":  8,
	"float":               4,
	"double":              8,
	"long double":         16,
}

var primitiveFamilies = []primitiveFamily{
	{canonical: "_Bool", required: []string{"_Bool"}, kind: Bool},
	{canonical: "char", required: []string{"char"}, kind: Int, signed: true},
	{canonical: "signed char", required: []string{"signed", "char"}, kind: Int, signed: true},
	{canonical: "unsigned char", required: []string{"unsigned", "char"}, kind: Int, signed: false},
	{canonical: "short", required: []string{"short"}, optional: []string{"signed", "int"}, kind: Int, signed: true},
	{canonical: "unsigned short", required: []string{"short", "unsigned"}, optional: []string{"int"}, kind: Int, signed: false},
	{canonical: "int", required: []string{"int"}, optional: []string{"signed"}, kind: Int, signed: true},
	{canonical: "unsigned int", required: []string{"unsigned", "int"}, kind: Int, signed: false},
	{canonical: "long", required: []string{"long"}, optional: []string{"signed", "int"}, kind: Int, signed: true},
	{canonical: "unsigned long", required: []string{"long", "unsigned"}, optional: []string{"int"}, kind: Int, signed: false},
	{canonical: "long long", required: []string{"long", "long"}, optional: []string{"signed", "int"}, kind: Int, signed: true},
	{canonical: "unsigned long long", required: []string{"long", "long", "unsigned"}, optional: []string{"int"}, kind: Int, signed: false},
	{canonical: "float", required: []string{"float"}, kind: Float},
	{canonical: "double", required: []string{"double"}, kind: Float},
	{canonical: "long double", required: []string{"long", "double"}, kind: Float},
}

// primitiveKeywords is every token that may appear in a specifier list's
// primitive-token span (as opposed to a qualifier, tag keyword, or a bare
// typedef identifier).
var primitiveKeywords = map[string]bool{
	"_Bool": true, "char": true, "signed": true, "unsigned": true,
	"short": true, "int": true, "long": true, "float": true, "double": true,
}

// matchPrimitiveFamily finds the family whose required+optional token
// alphabet exactly accounts for tokens (a multiset), with every required
// token present and no token outside the family's alphabet. It returns nil
// if no family matches, which is a syntax error (not a LookupError): the
// caller handed ctype.Type an unrecognized primitive spelling.
func matchPrimitiveFamily(tokens []string) *primitiveFamily {
	given := multiset(tokens)
	for i := range primitiveFamilies {
		f := &primitiveFamilies[i]
		full := multiset(append(append([]string{}, f.required...), f.optional...))
		req := multiset(f.required)
		ok := true
		for tok, n := range given {
			if n < req[tok] || n > full[tok] {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for tok, n := range req {
			if given[tok] < n {
				ok = false
				break
			}
		}
		if ok {
			return f
		}
	}
	return nil
}

func multiset(tokens []string) map[string]int {
	m := make(map[string]int, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

// defaultPrimitive synthesizes the canonical default Type for a primitive
// family name, resolving the word-sized sentinel against wordSize.
func defaultPrimitive(canonical string, wordSize int) *Type {
	size := primitiveSizes[canonical]
	if size == wordSized {
		size = int64(wordSize)
	}
	for _, f := range primitiveFamilies {
		if f.canonical != canonical {
			continue
		}
		switch f.kind {
		case Bool:
			return BoolType(canonical, size)
		case Int:
			return IntType(canonical, size, f.signed)
		case Float:
			return FloatType(canonical, size)
		}
	}
	return nil
}

// sizeTCandidates and ptrdiffTCandidates are tried in order; the first
// whose resolved size equals the architecture's word size wins.
var sizeTCandidates = []string{"unsigned long", "unsigned long long", "unsigned int"}
var ptrdiffTCandidates = []string{"long", "long long", "int"}
