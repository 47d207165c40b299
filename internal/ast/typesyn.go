package ast

import (
	"fmt"

	"tern/internal/source"
)

// TypeSynKind enumerates the type annotation syntax forms.
type TypeSynKind uint8

const (
	TypeSynInvalid TypeSynKind = iota
	TypeSynInt                 // i8..i64 / u8..u64
	TypeSynFloat               // f32 / f64
	TypeSynNamed               // record or other named type
)

// TypeSyn is a parsed type annotation as the front end hands it over.
type TypeSyn struct {
	Kind   TypeSynKind
	Width  uint8  // TypeSynInt, TypeSynFloat
	Signed bool   // TypeSynInt
	Name   string // TypeSynNamed
	Span   source.Span
}

// IntType builds an integer annotation node.
func IntType(width uint8, signed bool, span source.Span) *TypeSyn {
	return &TypeSyn{Kind: TypeSynInt, Width: width, Signed: signed, Span: span}
}

// FloatType builds a float annotation node.
func FloatType(width uint8, span source.Span) *TypeSyn {
	return &TypeSyn{Kind: TypeSynFloat, Width: width, Span: span}
}

// NamedType builds a named annotation node.
func NamedType(name string, span source.Span) *TypeSyn {
	return &TypeSyn{Kind: TypeSynNamed, Name: name, Span: span}
}

func (t *TypeSyn) String() string {
	if t == nil {
		return "<none>"
	}
	switch t.Kind {
	case TypeSynInt:
		prefix := "i"
		if !t.Signed {
			prefix = "u"
		}
		return fmt.Sprintf("%s%d", prefix, t.Width)
	case TypeSynFloat:
		return fmt.Sprintf("f%d", t.Width)
	case TypeSynNamed:
		return t.Name
	default:
		return "<invalid>"
	}
}

// Param is one entry of a parameter, return-parameter or record field list.
// Name and Type are both optional; entries missing either are skipped when
// the evaluator builds signatures.
type Param struct {
	Name    string
	HasName bool
	Type    *TypeSyn
	Span    source.Span
}

// NamedParam builds a parameter entry with both name and type present.
func NamedParam(name string, ty *TypeSyn, span source.Span) Param {
	return Param{Name: name, HasName: true, Type: ty, Span: span}
}
