// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"encoding/binary"
	"testing"

	"github.com/corescope/core/coreerr"
	"github.com/corescope/core/ctype"
)

func intVal(v int64) *int64 { return &v }
func addr(v uint64) *uint64 { return &v }

func TestClassifyConstant(t *testing.T) {
	sym := &Symbol{Type: ctype.IntType("int", 4, true), Value: intVal(4096)}
	if classify(sym) != Constant {
		t.Errorf("classify(value-only symbol) = %v, want Constant", classify(sym))
	}
}

func TestClassifyEnumerator(t *testing.T) {
	sym := &Symbol{Type: ctype.EnumType("color", ctype.IntType("int", 4, true), nil), IsEnumerator: true, Value: intVal(1)}
	if classify(sym) != Constant {
		t.Errorf("classify(enumerator) = %v, want Constant", classify(sym))
	}
}

func TestClassifyFunction(t *testing.T) {
	sym := &Symbol{
		Type:      ctype.FunctionType(ctype.VoidType(), nil, false),
		Address:   addr(0x1000),
		ByteOrder: binary.LittleEndian,
	}
	if classify(sym) != Function {
		t.Errorf("classify(function) = %v, want Function", classify(sym))
	}
}

func TestClassifyVariable(t *testing.T) {
	sym := &Symbol{
		Type:      ctype.IntType("int", 4, true),
		Address:   addr(0x2000),
		ByteOrder: binary.LittleEndian,
	}
	if classify(sym) != Variable {
		t.Errorf("classify(variable) = %v, want Variable", classify(sym))
	}
}

func TestSymbolWrongKindIsTypeError(t *testing.T) {
	idx := NewIndex()
	idx.AddSymbolFinder(func(name string, flags FindObjectFlags, filename string) (*Symbol, error) {
		if name == "counter" {
			return &Symbol{Type: ctype.IntType("int", 4, true), Value: intVal(7)}, nil
		}
		return nil, nil
	})
	if _, err := idx.Function("counter", ""); err == nil {
		t.Fatal("expected a type error asking for a constant as a function")
	} else if _, ok := err.(*coreerr.Type); !ok {
		t.Errorf("error = %T, want *coreerr.Type", err)
	}
}

func TestSymbolRegistrationOrder(t *testing.T) {
	idx := NewIndex()
	first := &Symbol{Type: ctype.IntType("int", 4, true), Value: intVal(1)}
	second := &Symbol{Type: ctype.IntType("int", 4, true), Value: intVal(2)}
	idx.AddSymbolFinder(func(name string, flags FindObjectFlags, filename string) (*Symbol, error) {
		return nil, nil
	})
	idx.AddSymbolFinder(func(name string, flags FindObjectFlags, filename string) (*Symbol, error) {
		if name == "n" {
			return first, nil
		}
		return nil, nil
	})
	idx.AddSymbolFinder(func(name string, flags FindObjectFlags, filename string) (*Symbol, error) {
		if name == "n" {
			return second, nil
		}
		return nil, nil
	})
	got, err := idx.Constant("n", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != first {
		t.Errorf("Constant(\"n\") returned the second finder's result, want the first")
	}
}

func TestConvenienceAccessorErrors(t *testing.T) {
	idx := NewIndex()
	if _, err := idx.Constant("missing", ""); err == nil || err.Error() != "could not find constant 'missing'" {
		t.Errorf("Constant error = %v, want \"could not find constant 'missing'\"", err)
	}
	if _, err := idx.Function("missing", "a.out"); err == nil || err.Error() != "could not find function 'missing' in 'a.out'" {
		t.Errorf("Function error = %v, want the filename-qualified message", err)
	}
	if _, err := idx.Variable("missing", ""); err == nil || err.Error() != "could not find variable 'missing'" {
		t.Errorf("Variable error = %v", err)
	}
	if _, err := idx.Type("missing", ""); err == nil || err.Error() != "could not find type 'missing'" {
		t.Errorf("Type error = %v", err)
	}
}

func TestContains(t *testing.T) {
	idx := NewIndex()
	idx.AddSymbolFinder(func(name string, flags FindObjectFlags, filename string) (*Symbol, error) {
		if name == "n" {
			return &Symbol{Type: ctype.IntType("int", 4, true), Value: intVal(1)}, nil
		}
		return nil, nil
	})
	ok, err := idx.Contains("n")
	if err != nil || !ok {
		t.Errorf("Contains(\"n\") = %v, %v, want true, nil", ok, err)
	}
	ok, err = idx.Contains("nope")
	if err != nil || ok {
		t.Errorf("Contains(\"nope\") = %v, %v, want false, nil", ok, err)
	}
}

func TestIndexByKey(t *testing.T) {
	idx := NewIndex()
	idx.AddSymbolFinder(func(name string, flags FindObjectFlags, filename string) (*Symbol, error) {
		if name == "n" {
			return &Symbol{Type: ctype.IntType("int", 4, true), Value: intVal(1)}, nil
		}
		return nil, nil
	})
	if _, err := idx.Index(42); err == nil {
		t.Fatal("expected a key error for a non-string key")
	} else if _, ok := err.(*coreerr.Key); !ok {
		t.Errorf("non-string key error = %T, want *coreerr.Key", err)
	}
	if _, err := idx.Index("nope"); err == nil {
		t.Fatal("expected a key error for a missing name")
	} else if _, ok := err.(*coreerr.Key); !ok {
		t.Errorf("missing-name error = %T, want *coreerr.Key", err)
	}
	sym, err := idx.Index("n")
	if err != nil {
		t.Fatal(err)
	}
	if sym.Value == nil || *sym.Value != 1 {
		t.Errorf("Index(\"n\") = %+v", sym)
	}
}
