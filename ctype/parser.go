// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctype

import (
	"strconv"
	"strings"

	"github.com/corescope/core/coreerr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokStar
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	ival int64
}

// lex tokenizes a C type spelling. It recognizes identifiers, decimal/hex/
// octal integer literals, and the punctuation the declarator grammar
// needs: * [ ] ( ).
func lex(spelling string) ([]token, error) {
	var toks []token
	s := spelling
	for len(s) > 0 {
		c := s[0]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			s = s[1:]
		case c == '*':
			toks = append(toks, token{kind: tokStar})
			s = s[1:]
		case c == '[':
			toks = append(toks, token{kind: tokLBracket})
			s = s[1:]
		case c == ']':
			toks = append(toks, token{kind: tokRBracket})
			s = s[1:]
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			s = s[1:]
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			s = s[1:]
		case isDigit(c):
			i := 1
			for i < len(s) && (isDigit(s[i]) || isHexLetter(s[i]) || s[i] == 'x' || s[i] == 'X') {
				i++
			}
			n, err := strconv.ParseInt(s[:i], 0, 64)
			if err != nil {
				return nil, coreerr.NewType("invalid integer literal %q", s[:i])
			}
			toks = append(toks, token{kind: tokInt, text: s[:i], ival: n})
			s = s[i:]
		case isIdentStart(c):
			i := 1
			for i < len(s) && isIdentCont(s[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: s[:i]})
			s = s[i:]
		default:
			return nil, coreerr.NewType("unexpected character %q in type spelling %q", c, spelling)
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isHexLetter(c byte) bool  { return c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' }
func isIdentStart(c byte) bool { return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isIdentCont(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// baseSpec is the resolved meaning of the specifier-list prefix of a type
// spelling: exactly one of its fields is populated, per kind.
type baseSpec struct {
	kind      Kind // Void, Int/Bool/Float (primitive), Struct/Union/Enum (tag), Typedef
	primitive string
	tag       string
	typedef   string
}

// decl composes a declarator's effect: given a resolved base type, it
// returns the final type the declarator describes.
type decl func(base *Type) *Type

func identityDecl(base *Type) *Type { return base }

type parser struct {
	toks     []token
	pos      int
	wordSize int
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// parseSpelling parses a full C type spelling: a specifier list followed
// by an optional abstract declarator.
func parseSpelling(spelling string, wordSize int) (baseSpec, Qualifiers, decl, error) {
	toks, err := lex(spelling)
	if err != nil {
		return baseSpec{}, 0, nil, err
	}
	p := &parser{toks: toks, wordSize: wordSize}

	spec, quals, err := p.parseSpecifierList()
	if err != nil {
		return baseSpec{}, 0, nil, err
	}

	d := identityDecl
	if p.peek().kind != tokEOF {
		d, err = p.parseAbstractDeclarator()
		if err != nil {
			return baseSpec{}, 0, nil, err
		}
	}
	if p.peek().kind != tokEOF {
		return baseSpec{}, 0, nil, coreerr.NewType("unexpected trailing tokens in type spelling %q", spelling)
	}
	return spec, quals, d, nil
}

func (p *parser) parseSpecifierList() (baseSpec, Qualifiers, error) {
	var quals Qualifiers
	var primTokens []string
	// specState tracks what kind of specifier (if any) has started, so a
	// second, incompatible specifier can be rejected: primitive tokens may
	// keep accumulating, but a tag/void/typedef specifier is a one-shot
	// terminal that permits no further specifier tokens.
	const (
		specNone = iota
		specPrimitive
		specTerminal
	)
	specState := specNone
	var spec baseSpec

	for {
		tok := p.peek()
		if tok.kind != tokIdent {
			break
		}
		switch tok.text {
		case "const":
			quals |= Const
			p.next()
			continue
		case "volatile":
			quals |= Volatile
			p.next()
			continue
		case "struct", "union", "enum":
			if specState != specNone {
				return baseSpec{}, 0, coreerr.NewType("multiple type specifiers in type spelling")
			}
			kindWord := tok.text
			p.next()
			nameTok := p.peek()
			if nameTok.kind != tokIdent {
				return baseSpec{}, 0, coreerr.NewType("expected a tag name after %q", kindWord)
			}
			p.next()
			spec = baseSpec{kind: tagKind(kindWord), tag: nameTok.text}
			specState = specTerminal
			continue
		case "void":
			if specState != specNone {
				return baseSpec{}, 0, coreerr.NewType("multiple type specifiers in type spelling")
			}
			p.next()
			spec = baseSpec{kind: Void}
			specState = specTerminal
			continue
		}
		if primitiveKeywords[tok.text] {
			if specState == specTerminal {
				return baseSpec{}, 0, coreerr.NewType("multiple type specifiers in type spelling")
			}
			primTokens = append(primTokens, tok.text)
			p.next()
			specState = specPrimitive
			continue
		}
		// A plain identifier that isn't a qualifier, tag keyword, or
		// primitive keyword: a typedef name, but only if nothing else has
		// started the specifier list yet.
		if specState != specNone {
			break
		}
		spec = baseSpec{kind: Typedef, typedef: tok.text}
		specState = specTerminal
		p.next()
	}

	if specState == specNone {
		return baseSpec{}, 0, coreerr.NewType("expected a type specifier in type spelling")
	}
	if len(primTokens) > 0 {
		fam := matchPrimitiveFamily(primTokens)
		if fam == nil {
			return baseSpec{}, 0, coreerr.NewType("unrecognized primitive type %q", strings.Join(primTokens, " "))
		}
		spec = baseSpec{kind: fam.kind, primitive: fam.canonical}
	}
	return spec, quals, nil
}

func tagKind(word string) Kind {
	switch word {
	case "struct":
		return Struct
	case "union":
		return Union
	case "enum":
		return Enum
	}
	panic("unreachable")
}

// parseAbstractDeclarator parses a pointer prefix followed by a direct
// abstract declarator, composing them per the standard C declarator-
// binding rules: pointers in the prefix apply to the base before any array
// suffixes belonging to the same syntactic level, while a parenthesized
// group's suffixes apply to the base before the group's own contents wrap
// around it.
func (p *parser) parseAbstractDeclarator() (decl, error) {
	var ptrQuals []Qualifiers
	for p.peek().kind == tokStar {
		p.next()
		q, err := p.parseQualifierList()
		if err != nil {
			return nil, err
		}
		ptrQuals = append(ptrQuals, q)
	}

	dir, err := p.parseDirectAbstractDeclarator()
	if err != nil {
		return nil, err
	}

	wordSize := p.wordSize
	return func(base *Type) *Type {
		wrapped := base
		for _, q := range ptrQuals {
			wrapped = PointerType(int64(wordSize), wrapped, q)
		}
		return dir(wrapped)
	}, nil
}

func (p *parser) parseQualifierList() (Qualifiers, error) {
	var q Qualifiers
	for p.peek().kind == tokIdent {
		switch p.peek().text {
		case "const":
			q |= Const
		case "volatile":
			q |= Volatile
		default:
			return q, nil
		}
		p.next()
	}
	return q, nil
}

func (p *parser) parseDirectAbstractDeclarator() (decl, error) {
	if p.peek().kind == tokLParen {
		p.next()
		inner, err := p.parseAbstractDeclarator()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, coreerr.NewType("expected ')' in type spelling")
		}
		p.next()
		outer, err := p.parseArraySuffixChain()
		if err != nil {
			return nil, err
		}
		return func(base *Type) *Type { return inner(outer(base)) }, nil
	}
	return p.parseArraySuffixChain()
}

// parseArraySuffixChain parses zero or more consecutive "[N]"/"[]"
// suffixes, composing them so the leftmost bracket is the outermost array
// dimension.
func (p *parser) parseArraySuffixChain() (decl, error) {
	if p.peek().kind != tokLBracket {
		return identityDecl, nil
	}
	p.next()
	var length *int64
	if p.peek().kind == tokInt {
		n := p.next().ival
		length = &n
	} else if p.peek().kind != tokRBracket {
		return nil, coreerr.NewType("expected an integer literal or ']' in array declarator")
	}
	if p.peek().kind != tokRBracket {
		return nil, coreerr.NewType("expected ']' in array declarator")
	}
	p.next()

	rest, err := p.parseArraySuffixChain()
	if err != nil {
		return nil, err
	}
	return func(base *Type) *Type {
		return ArrayType(length, rest(base))
	}, nil
}
