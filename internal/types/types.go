// Package types defines the closed type model the evaluator operates over.
package types

import "fmt"

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	// KindEmpty is the type of the empty value.
	KindEmpty Kind = iota
	// KindCoercibleInt is an untyped integer literal awaiting a width.
	KindCoercibleInt
	// KindCoercibleFloat is an untyped float literal awaiting a width.
	KindCoercibleFloat
	// KindInt is a sized integer.
	KindInt
	// KindFloat is a sized float.
	KindFloat
	// KindFunc is a function with ordered parameter and return-parameter lists.
	KindFunc
	// KindRecord is a record instance shape (ordered member types).
	KindRecord
	// KindSymbol is a reference to a scope-graph entry.
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCoercibleInt:
		return "int literal"
	case KindCoercibleFloat:
		return "float literal"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindFunc:
		return "fn"
	case KindRecord:
		return "record"
	case KindSymbol:
		return "symbol"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of sized integers/floats.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// ScopeID references a node in the scope arena. It lives here, not in the
// scope package, because KindSymbol types carry one and the scope package
// itself stores typed values.
type ScopeID uint32

// NoScopeID marks the absence of a scope reference.
const NoScopeID ScopeID = 0

// IsValid reports whether the ID refers to an allocated scope node.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// Param is one named, typed entry of an ordered parameter or field list.
type Param struct {
	Name string
	Type Type
}

// FnInfo stores the signature payload of a function type.
type FnInfo struct {
	Params []Param // parameters, in declaration order
	Rets   []Param // return parameters, in declaration order
}

// Type is a closed descriptor for any evaluator type. Payload fields are
// populated according to Kind and ignored otherwise.
type Type struct {
	Kind   Kind
	Width  Width   // KindInt, KindFloat
	Signed bool    // KindInt
	Fn     *FnInfo // KindFunc
	Fields []Param // KindRecord
	Scope  ScopeID // KindSymbol
}

// Descriptor helpers ---------------------------------------------------------

// Empty describes the type of the empty value.
func Empty() Type {
	return Type{Kind: KindEmpty}
}

// CoercibleInt describes an untyped integer literal.
func CoercibleInt() Type {
	return Type{Kind: KindCoercibleInt}
}

// CoercibleFloat describes an untyped float literal.
func CoercibleFloat() Type {
	return Type{Kind: KindCoercibleFloat}
}

// MakeInt describes a signed or unsigned integer of the given width.
func MakeInt(width Width, signed bool) Type {
	return Type{Kind: KindInt, Width: width, Signed: signed}
}

// MakeFloat describes a floating-point type of the given width.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}

// MakeFunc describes a function signature.
func MakeFunc(params, rets []Param) Type {
	return Type{Kind: KindFunc, Fn: &FnInfo{Params: params, Rets: rets}}
}

// MakeRecord describes a record instance shape.
func MakeRecord(fields []Param) Type {
	return Type{Kind: KindRecord, Fields: fields}
}

// MakeSymbol describes a reference to a scope-graph entry.
func MakeSymbol(id ScopeID) Type {
	return Type{Kind: KindSymbol, Scope: id}
}

// String renders the type the way diagnostics show it.
func (t Type) String() string {
	switch t.Kind {
	case KindInt:
		prefix := "i"
		if !t.Signed {
			prefix = "u"
		}
		return fmt.Sprintf("%s%d", prefix, t.Width)
	case KindFloat:
		return fmt.Sprintf("f%d", t.Width)
	case KindFunc:
		return "fn" + signatureString(t.Fn)
	case KindRecord:
		return "record" + fieldsString(t.Fields)
	case KindSymbol:
		return fmt.Sprintf("symbol#%d", t.Scope)
	default:
		return t.Kind.String()
	}
}

func signatureString(fn *FnInfo) string {
	if fn == nil {
		return "(?)"
	}
	return fieldsString(fn.Params) + " -> " + fieldsString(fn.Rets)
}

func fieldsString(fields []Param) string {
	out := "("
	for i, f := range fields {
		if i > 0 {
			out += ", "
		}
		out += f.Name + ": " + f.Type.String()
	}
	return out + ")"
}
