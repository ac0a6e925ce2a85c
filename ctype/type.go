// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctype

// Type is the representation of a C type. It is a value object: equality
// is structural (see Equal), and a Type is never mutated after
// construction — qualifying or wrapping a Type always produces a new one.
//
// Only the fields relevant to Kind are meaningful; see the constructors
// below for which fields each Kind populates. This mirrors the
// one-struct-many-kinds shape golang-debug's internal/gocore.Type uses for
// Go runtime types, adapted here to the C TypeKind set.
type Type struct {
	Kind Kind
	Qual Qualifiers

	// Name is the primitive or typedef spelling; Tag is the struct/union/
	// enum tag. Exactly one is meaningful, depending on Kind.
	Name string
	Tag  string

	Size     int64
	IsSigned bool // meaningful only for Kind == Int

	Elem   *Type  // Pointer, Array, Typedef (underlying type)
	Length *int64 // Array only; nil means an incomplete array ("T[]")

	Fields      []Field      // Struct, Union
	Enumerators []Enumerator // Enum

	Return   *Type // Function
	Params   []*Type
	Variadic bool
}

// Field is one member of a struct or union type.
type Field struct {
	Name string
	Type *Type
}

// Enumerator is one named constant of an enum type.
type Enumerator struct {
	Name  string
	Value int64
}

func VoidType() *Type { return &Type{Kind: Void} }

func BoolType(name string, size int64) *Type {
	return &Type{Kind: Bool, Name: name, Size: size}
}

func IntType(name string, size int64, signed bool, qual ...Qualifiers) *Type {
	t := &Type{Kind: Int, Name: name, Size: size, IsSigned: signed}
	if len(qual) > 0 {
		t.Qual = qual[0]
	}
	return t
}

func FloatType(name string, size int64) *Type {
	return &Type{Kind: Float, Name: name, Size: size}
}

func TypedefType(name string, underlying *Type) *Type {
	return &Type{Kind: Typedef, Name: name, Elem: underlying}
}

func PointerType(size int64, elem *Type, qual ...Qualifiers) *Type {
	t := &Type{Kind: Pointer, Size: size, Elem: elem}
	if len(qual) > 0 {
		t.Qual = qual[0]
	}
	return t
}

// ArrayType constructs an array of elem. length is nil for an incomplete
// array ("T[]"); otherwise it holds the element count.
func ArrayType(length *int64, elem *Type) *Type {
	return &Type{Kind: Array, Length: length, Elem: elem}
}

func StructType(tag string, size int64, fields []Field) *Type {
	return &Type{Kind: Struct, Tag: tag, Size: size, Fields: fields}
}

func UnionType(tag string, size int64, fields []Field) *Type {
	return &Type{Kind: Union, Tag: tag, Size: size, Fields: fields}
}

func EnumType(tag string, underlying *Type, enumerators []Enumerator) *Type {
	return &Type{Kind: Enum, Tag: tag, Elem: underlying, Enumerators: enumerators}
}

func FunctionType(ret *Type, params []*Type, variadic bool) *Type {
	return &Type{Kind: Function, Return: ret, Params: params, Variadic: variadic}
}

// WithQualifiers returns a copy of t with its qualifier bitset replaced.
func (t *Type) WithQualifiers(q Qualifiers) *Type {
	cp := *t
	cp.Qual = q
	return &cp
}

// Equal reports whether t and other describe the same type, structurally.
// Finder-returned types are compared this way rather than by pointer
// identity, since finders may synthesize a fresh Type on every call.
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.Kind != other.Kind || t.Qual != other.Qual {
		return false
	}
	switch t.Kind {
	case Void:
		return true
	case Bool, Float:
		return t.Name == other.Name && t.Size == other.Size
	case Int:
		return t.Name == other.Name && t.Size == other.Size && t.IsSigned == other.IsSigned
	case Typedef:
		return t.Name == other.Name && t.Elem.Equal(other.Elem)
	case Pointer:
		return t.Size == other.Size && t.Elem.Equal(other.Elem)
	case Array:
		if (t.Length == nil) != (other.Length == nil) {
			return false
		}
		if t.Length != nil && *t.Length != *other.Length {
			return false
		}
		return t.Elem.Equal(other.Elem)
	case Struct, Union:
		if t.Tag != other.Tag || t.Size != other.Size || len(t.Fields) != len(other.Fields) {
			return false
		}
		for i := range t.Fields {
			if t.Fields[i].Name != other.Fields[i].Name || !t.Fields[i].Type.Equal(other.Fields[i].Type) {
				return false
			}
		}
		return true
	case Enum:
		if t.Tag != other.Tag || len(t.Enumerators) != len(other.Enumerators) {
			return false
		}
		if !t.Elem.Equal(other.Elem) {
			return false
		}
		for i := range t.Enumerators {
			if t.Enumerators[i] != other.Enumerators[i] {
				return false
			}
		}
		return true
	case Function:
		if t.Variadic != other.Variadic || len(t.Params) != len(other.Params) {
			return false
		}
		if !t.Return.Equal(other.Return) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equal(other.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}
