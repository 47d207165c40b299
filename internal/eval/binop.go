package eval

import (
	"fmt"
	"math"

	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/scope"
	"tern/internal/types"
	"tern/internal/value"
)

// evalBinary dispatches a binary expression: assignment and member-access
// shapes first, then the arithmetic table over the operand type pair.
func (ev *Evaluator) evalBinary(e *ast.Expr) value.Value {
	left, right := e.Left, e.Right

	switch {
	case e.Op == ast.OpAssign && left != nil && left.Kind == ast.ExprIdent:
		v := ev.evalExpr(right)
		ev.scope.UpdateValue(left.Name, scope.BindingEntry(v.Clone()))
		return v

	case e.Op == ast.OpAssign && left.IsDotted():
		return ev.assignMember(left, right, e)

	case e.Op == ast.OpDot:
		return ev.readMember(left, right, e)
	}

	lv := ev.evalExpr(left)
	rv := ev.evalExpr(right)
	return ev.arith(e, lv, rv)
}

// assignMember handles `(a.b…) = expr` via in-place mutation of the
// resolved record member.
func (ev *Evaluator) assignMember(left, right, whole *ast.Expr) value.Value {
	v := ev.evalExpr(right)

	if ev.opts.Strict.RecordFields {
		ev.checkMemberAssignType(left, v, whole)
	}

	ok := ev.scope.FollowMemberAccessMut(left.Left, left.Right, func(member *value.Value) {
		*member = v.Clone()
	})
	if !ok {
		if ev.opts.Strict.MemberAccess {
			ev.report(diag.EvalBadMemberAccess, whole.Span, "member assignment target does not resolve")
		}
		return value.Empty()
	}
	return v
}

// checkMemberAssignType reports when a member assignment would change the
// member's type. Runs before the mutation so the old type is still
// observable.
func (ev *Evaluator) checkMemberAssignType(left *ast.Expr, incoming value.Value, whole *ast.Expr) {
	ev.scope.FollowMemberAccessMut(left.Left, left.Right, func(member *value.Value) {
		if !types.Equal(member.Type, incoming.Type) {
			ev.report(diag.EvalFieldMismatch, whole.Span,
				fmt.Sprintf("member assignment changes type from %s to %s", member.Type, incoming.Type))
		}
	})
}

// readMember handles `a.b`: a record-instance base with an identifier on
// the right yields a clone of the named member; everything else is empty.
func (ev *Evaluator) readMember(left, right, whole *ast.Expr) value.Value {
	lv := ev.evalExpr(left)
	if lv.Kind == value.VKRecord && right != nil && right.Kind == ast.ExprIdent {
		if m, ok := lv.Member(right.Name); ok {
			return m.Clone()
		}
	}
	if ev.opts.Strict.MemberAccess {
		ev.report(diag.EvalBadMemberAccess, whole.Span, "member access does not resolve")
	}
	return value.Empty()
}

// arithOp is one row of the operator table: the same operator applied to
// the integer and float representations.
type arithOp struct {
	ints   func(a, b int64) int64
	floats func(a, b float64) float64
}

// arithOps is the closed operator table. Operators outside it yield empty
// on numeric pairs.
var arithOps = map[ast.Op]arithOp{
	ast.OpAdd: {
		ints:   func(a, b int64) int64 { return a + b },
		floats: func(a, b float64) float64 { return a + b },
	},
	ast.OpSub: {
		ints:   func(a, b int64) int64 { return a - b },
		floats: func(a, b float64) float64 { return a - b },
	},
	ast.OpMul: {
		ints:   func(a, b int64) int64 { return a * b },
		floats: func(a, b float64) float64 { return a * b },
	},
	ast.OpDiv: {
		ints:   func(a, b int64) int64 { return a / b }, // truncating
		floats: func(a, b float64) float64 { return a / b },
	},
	ast.OpPow: {
		ints:   ipow,
		floats: math.Pow,
	},
}

// operandFamily classifies a type pair for the arithmetic table.
type operandFamily uint8

const (
	famMismatch operandFamily = iota
	famCoercibleInt
	famSizedInt // one sized, one coercible; result re-tagged to the sized side
	famCoercibleFloat
	famSizedFloat
)

// classifyOperands applies the coercion rules: two same-kind coercibles
// stay coercible, a coercible plus a sized operand of the same family
// adopts the sized operand's type, everything else mismatches. Two sized
// operands mismatch even when their types agree.
func classifyOperands(l, r types.Type) (operandFamily, types.Type) {
	switch {
	case l.Kind == types.KindCoercibleInt && r.Kind == types.KindCoercibleInt:
		return famCoercibleInt, types.CoercibleInt()
	case l.Kind == types.KindInt && r.Kind == types.KindCoercibleInt:
		return famSizedInt, l
	case l.Kind == types.KindCoercibleInt && r.Kind == types.KindInt:
		return famSizedInt, r
	case l.Kind == types.KindCoercibleFloat && r.Kind == types.KindCoercibleFloat:
		return famCoercibleFloat, types.CoercibleFloat()
	case l.Kind == types.KindFloat && r.Kind == types.KindCoercibleFloat:
		return famSizedFloat, l
	case l.Kind == types.KindCoercibleFloat && r.Kind == types.KindFloat:
		return famSizedFloat, r
	default:
		return famMismatch, types.Empty()
	}
}

// arith evaluates an arithmetic pair through the operator table.
func (ev *Evaluator) arith(e *ast.Expr, lv, rv value.Value) value.Value {
	family, result := classifyOperands(lv.Type, rv.Type)
	op, known := arithOps[e.Op]

	if family == famMismatch || !known {
		if ev.opts.Strict.Operands {
			ev.report(diag.EvalUnsupportedOperands, e.Span,
				fmt.Sprintf("operator %s undefined for %s and %s", e.Op, lv.Type, rv.Type))
		}
		return value.Empty()
	}

	switch family {
	case famCoercibleInt, famSizedInt:
		if e.Op == ast.OpDiv && rv.Int == 0 && ev.opts.Strict.IntegerDivision {
			ev.report(diag.EvalDivideByZero, e.Span, "integer division by zero")
			return value.Empty()
		}
		bits := op.ints(lv.Int, rv.Int)
		if family == famCoercibleInt {
			return value.CInt(bits)
		}
		return value.Int(bits, result.Width, result.Signed)

	case famCoercibleFloat, famSizedFloat:
		bits := op.floats(lv.Float, rv.Float)
		if family == famCoercibleFloat {
			return value.CFloat(bits)
		}
		return value.Float(bits, result.Width)
	}
	return value.Empty()
}

// ipow raises a to the power of b. The exponent is truncated from the raw
// bits of the right operand.
func ipow(a, b int64) int64 {
	exp := uint32(b) //nolint:gosec // deliberate truncation of the raw bits
	out := int64(1)
	base := a
	for exp > 0 {
		if exp&1 == 1 {
			out *= base
		}
		base *= base
		exp >>= 1
	}
	return out
}
