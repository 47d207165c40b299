package eval

import (
	"fmt"

	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/scope"
	"tern/internal/types"
	"tern/internal/value"
)

// evalExpr evaluates one expression. Failing paths degrade to empty;
// strictness flags decide whether they also record a diagnostic.
func (ev *Evaluator) evalExpr(e *ast.Expr) value.Value {
	if e == nil {
		return value.Empty()
	}
	switch e.Kind {
	case ast.ExprIntLit:
		return value.CInt(e.Int)
	case ast.ExprFloatLit:
		return value.CFloat(e.Float)
	case ast.ExprIdent:
		return ev.evalIdent(e)
	case ast.ExprBinary:
		return ev.evalBinary(e)
	case ast.ExprCall:
		return ev.evalCall(e)
	default:
		return value.Empty()
	}
}

// evalIdent resolves an identifier to its bound value. Unbound names and
// names bound to non-value entries (records, modules) yield empty.
func (ev *Evaluator) evalIdent(e *ast.Expr) value.Value {
	id, ok := ev.scope.FindSymbol(e.Name)
	if !ok {
		if ev.opts.Strict.UnresolvedIdents {
			ev.report(diag.EvalUnresolvedIdent, e.Span, fmt.Sprintf("unresolved identifier %q", e.Name))
		}
		return value.Empty()
	}
	node := ev.scope.Arena().Get(id)
	if node == nil || node.Value.Kind != scope.EntryBinding {
		if ev.opts.Strict.UnresolvedIdents {
			ev.report(diag.EvalUnresolvedIdent, e.Span, fmt.Sprintf("%q is not a value", e.Name))
		}
		return value.Empty()
	}
	return node.Value.Binding.Clone()
}

// evalCall implements the call protocol: check the callee, push the
// captured scope as the call frame, bind arguments positionally with exact
// type checks, run the body, collect return parameters, pop. The frame is
// released on every exit path, including the type-mismatch abort.
func (ev *Evaluator) evalCall(e *ast.Expr) value.Value {
	callee := ev.evalExpr(e.Callee)
	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = ev.evalExpr(a)
	}

	if callee.Type.Kind != types.KindFunc || callee.Fn == nil {
		if ev.opts.Strict.CallTargets {
			ev.report(diag.EvalNotCallable, e.Span, "call target is not a function")
		}
		return value.Empty()
	}
	fn := callee.Fn

	leave := ev.scope.EnterFrame(fn.Captured)
	defer leave()

	for i, param := range fn.Params {
		if i >= len(args) {
			break
		}
		// Coercible literals adopt the declared parameter type before the
		// exact-equality check.
		arg := coerceTo(args[i], param.Type)
		if !types.Equal(arg.Type, param.Type) {
			ev.report(diag.EvalTypeMismatch, e.Args[i].Span,
				fmt.Sprintf("type mismatch: expected %s, found %s", param.Type, arg.Type))
			return value.Empty()
		}
		ev.scope.UpdateValue(param.Name, scope.BindingEntry(arg))
	}

	ev.evalStmt(fn.Body)

	members := make([]value.Member, 0, len(fn.Rets))
	for _, ret := range fn.Rets {
		members = append(members, value.Member{Name: ret.Name, Value: ev.returnValue(ret)})
	}
	return value.RecordInstance(members)
}

// returnValue resolves one declared return parameter in the call frame.
// Unbound names default for their type; names bound to non-value entries
// yield empty.
func (ev *Evaluator) returnValue(ret types.Param) value.Value {
	id, ok := ev.scope.FindSymbol(ret.Name)
	if !ok {
		return value.DefaultFor(ret.Type)
	}
	node := ev.scope.Arena().Get(id)
	if node == nil || node.Value.Kind != scope.EntryBinding {
		return value.Empty()
	}
	return node.Value.Binding.Clone()
}
