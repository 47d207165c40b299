// Package value defines the runtime values the evaluator produces and the
// scope graph stores.
package value

import (
	"fmt"
	"strconv"

	"tern/internal/ast"
	"tern/internal/types"
)

// Kind identifies the payload shape of a Value.
type Kind uint8

const (
	// VKEmpty represents the empty value.
	VKEmpty Kind = iota
	// VKInt represents raw integer bits (coercible or sized per Type).
	VKInt
	// VKFloat represents raw float bits (coercible or sized per Type).
	VKFloat
	// VKRecord represents an ordered member list (record instances, tuples).
	VKRecord
	// VKFunc represents a function value.
	VKFunc
)

func (k Kind) String() string {
	switch k {
	case VKEmpty:
		return "empty"
	case VKInt:
		return "int"
	case VKFloat:
		return "float"
	case VKRecord:
		return "record"
	case VKFunc:
		return "func"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Member is one named entry of a record instance or tuple, in insertion
// order.
type Member struct {
	Name  string
	Value Value
}

// Func is the payload of a function value. Captured points at the scope
// node reserved when the function was declared; every invocation pushes
// that node as the call frame.
type Func struct {
	Body     *ast.Stmt
	Params   []types.Param
	Rets     []types.Param
	Captured types.ScopeID
}

// Value is a typed runtime value. Payload fields are populated according
// to Kind and ignored otherwise.
type Value struct {
	Type    types.Type
	Kind    Kind
	Int     int64    // VKInt
	Float   float64  // VKFloat
	Members []Member // VKRecord
	Fn      *Func    // VKFunc
}

// IsEmpty reports whether this is the empty value.
func (v Value) IsEmpty() bool {
	return v.Kind == VKEmpty
}

// Constructors ---------------------------------------------------------------

// Empty creates the empty value.
func Empty() Value {
	return Value{Type: types.Empty(), Kind: VKEmpty}
}

// CInt creates an untyped (coercible) integer literal value.
func CInt(n int64) Value {
	return Value{Type: types.CoercibleInt(), Kind: VKInt, Int: n}
}

// CFloat creates an untyped (coercible) float literal value.
func CFloat(f float64) Value {
	return Value{Type: types.CoercibleFloat(), Kind: VKFloat, Float: f}
}

// Int creates a sized integer value.
func Int(n int64, width types.Width, signed bool) Value {
	return Value{Type: types.MakeInt(width, signed), Kind: VKInt, Int: n}
}

// Float creates a sized float value.
func Float(f float64, width types.Width) Value {
	return Value{Type: types.MakeFloat(width), Kind: VKFloat, Float: f}
}

// RecordInstance creates a record instance from ordered members.
func RecordInstance(members []Member) Value {
	fields := make([]types.Param, len(members))
	for i, m := range members {
		fields[i] = types.Param{Name: m.Name, Type: m.Value.Type}
	}
	return Value{Type: types.MakeRecord(fields), Kind: VKRecord, Members: members}
}

// Tuple creates a record instance with positional member names, the result
// shape of a multi-item statement list.
func Tuple(values []Value) Value {
	members := make([]Member, len(values))
	for i, v := range values {
		members[i] = Member{Name: strconv.Itoa(i), Value: v}
	}
	return RecordInstance(members)
}

// MakeFunc creates a function value capturing the scope node reserved at
// its declaration.
func MakeFunc(body *ast.Stmt, params, rets []types.Param, captured types.ScopeID) Value {
	return Value{
		Type: types.MakeFunc(params, rets),
		Kind: VKFunc,
		Fn:   &Func{Body: body, Params: params, Rets: rets, Captured: captured},
	}
}

// DefaultFor produces the zero value of a type, used for return parameters
// left unbound by a function body.
func DefaultFor(t types.Type) Value {
	switch t.Kind {
	case types.KindInt, types.KindCoercibleInt:
		return Value{Type: t, Kind: VKInt}
	case types.KindFloat, types.KindCoercibleFloat:
		return Value{Type: t, Kind: VKFloat}
	default:
		return Empty()
	}
}

// Member returns the named member of a record instance, or false.
func (v Value) Member(name string) (Value, bool) {
	for _, m := range v.Members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Clone returns a deep copy: record members are copied so mutation of the
// original does not show through.
func (v Value) Clone() Value {
	if v.Kind != VKRecord {
		return v
	}
	members := make([]Member, len(v.Members))
	for i, m := range v.Members {
		members[i] = Member{Name: m.Name, Value: m.Value.Clone()}
	}
	out := v
	out.Members = members
	return out
}

// String renders the value for debug output.
func (v Value) String() string {
	switch v.Kind {
	case VKEmpty:
		return "empty"
	case VKInt:
		return strconv.FormatInt(v.Int, 10)
	case VKFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case VKRecord:
		out := "{"
		for i, m := range v.Members {
			if i > 0 {
				out += ", "
			}
			out += m.Name + ": " + m.Value.String()
		}
		return out + "}"
	case VKFunc:
		return v.Type.String()
	default:
		return fmt.Sprintf("<unknown:%d>", v.Kind)
	}
}
