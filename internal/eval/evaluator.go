// Package eval implements the tree-walking evaluator: declaration binding,
// function invocation, member access and the numeric coercion rules, all
// driven against the scope manager.
package eval

import (
	"sync"

	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/render"
	"tern/internal/scope"
	"tern/internal/source"
	"tern/internal/types"
	"tern/internal/value"
)

// Evaluator walks a program against a scope manager. The walk itself is
// synchronous depth-first recursion; the lock exists only so a shared
// handle can be embedded safely, and it is held for whole passes, never
// per micro-operation.
type Evaluator struct {
	mu       sync.RWMutex
	program  *ast.Program
	scope    *scope.Manager
	bag      *diag.Bag
	reporter diag.Reporter
	opts     Options
}

// New creates an evaluator over program. The manager carries the host's
// pre-built root scope.
func New(program *ast.Program, mgr *scope.Manager, opts Options) *Evaluator {
	bag := diag.NewBag(opts.maxDiagnostics())
	return &Evaluator{
		program:  program,
		scope:    mgr,
		bag:      bag,
		reporter: diag.BagReporter{Bag: bag},
		opts:     opts,
	}
}

// Evaluate runs every top-level statement in source order and returns one
// value per statement. Diagnostics accumulate; the pass never aborts.
func (ev *Evaluator) Evaluate() []value.Value {
	ev.mu.Lock()
	defer ev.mu.Unlock()

	out := make([]value.Value, 0, len(ev.program.Stmts))
	for _, stmt := range ev.program.Stmts {
		out = append(out, ev.evalStmt(stmt))
	}
	return out
}

// Diagnostics returns the diagnostics recorded so far, read-only.
func (ev *Evaluator) Diagnostics() []diag.Diagnostic {
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	return ev.bag.Items()
}

// Bag exposes the diagnostic bag for reporting sinks.
func (ev *Evaluator) Bag() *diag.Bag {
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	return ev.bag
}

// ScopeTree exposes the scope graph for generic tree rendering.
func (ev *Evaluator) ScopeTree() render.Node {
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	return ev.scope.RenderRoot()
}

// evalStmt evaluates one statement. Declarations bind, expressions yield
// their value, lists yield their single item or an ordered tuple;
// everything else is a no-op evaluating to empty.
func (ev *Evaluator) evalStmt(s *ast.Stmt) value.Value {
	if s == nil {
		return value.Empty()
	}
	switch s.Kind {
	case ast.StmtDecl:
		ev.evalDecl(s)
	case ast.StmtExpr:
		return ev.evalExpr(s.Expr)
	case ast.StmtList:
		if len(s.Items) == 1 {
			return ev.evalStmt(s.Items[0])
		}
		values := make([]value.Value, 0, len(s.Items))
		for _, item := range s.Items {
			values = append(values, ev.evalStmt(item))
		}
		return value.Tuple(values)
	}
	return value.Empty()
}

func (ev *Evaluator) evalDecl(s *ast.Stmt) {
	if s.Init == nil {
		return
	}
	switch {
	case s.Init.Kind == ast.ExprRecord:
		fields := ev.evalParams(s.Init.Params)
		ev.scope.UpdateValue(s.Name, scope.RecordEntry(s.Name, fields))

	case s.Init.Kind == ast.ExprFunc && s.Init.Body != nil:
		params := ev.evalParams(s.Init.Params)
		rets := ev.evalParams(s.Init.Rets)

		// Reserve the function's own node first so the value can capture
		// it; that node doubles as the call frame on every invocation.
		ev.scope.UpdateValue(s.Name, scope.BindingEntry(value.Empty()))
		captured, _ := ev.scope.FindSymbol(s.Name)
		fn := value.MakeFunc(s.Init.Body, params, rets, captured)
		ev.scope.UpdateValue(s.Name, scope.BindingEntry(fn))

	default:
		v := ev.evalExpr(s.Init)
		if s.Type != nil {
			v = coerceTo(v, ev.evalType(s.Type))
		}
		ev.scope.UpdateValue(s.Name, scope.BindingEntry(v))
	}
}

// coerceTo adopts a declared sized numeric type for a coercible value of
// the same family. Anything else passes through unchanged.
func coerceTo(v value.Value, declared types.Type) value.Value {
	switch {
	case declared.Kind == types.KindInt && v.Type.Kind == types.KindCoercibleInt:
		return value.Int(v.Int, declared.Width, declared.Signed)
	case declared.Kind == types.KindFloat && v.Type.Kind == types.KindCoercibleFloat:
		return value.Float(v.Float, declared.Width)
	default:
		return v
	}
}

// evalParams computes the ordered signature entries of a parameter, return
// or field list. Entries missing a name or a type annotation are skipped.
func (ev *Evaluator) evalParams(params []ast.Param) []types.Param {
	out := make([]types.Param, 0, len(params))
	for _, p := range params {
		if !p.HasName || p.Type == nil {
			continue
		}
		out = append(out, types.Param{Name: p.Name, Type: ev.evalType(p.Type)})
	}
	return out
}

// evalType lowers a type annotation. Named types resolve through the
// active-scope stack to a symbol reference; unresolved names lower to
// empty.
func (ev *Evaluator) evalType(t *ast.TypeSyn) types.Type {
	switch t.Kind {
	case ast.TypeSynInt:
		return types.MakeInt(types.Width(t.Width), t.Signed)
	case ast.TypeSynFloat:
		return types.MakeFloat(types.Width(t.Width))
	case ast.TypeSynNamed:
		if id, ok := ev.scope.FindSymbol(t.Name); ok {
			return types.MakeSymbol(id)
		}
		return types.Empty()
	default:
		return types.Empty()
	}
}

func (ev *Evaluator) report(code diag.Code, span source.Span, msg string) {
	ev.reporter.Report(code, diag.SevError, span, msg, nil)
}
