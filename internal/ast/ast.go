// Package ast defines the statement and expression nodes the evaluator
// consumes. The front end producing them lives outside this module; tests
// and hosts build nodes through the constructor helpers.
package ast

import (
	"tern/internal/source"
)

// ExprKind enumerates expression node forms.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIntLit
	ExprFloatLit
	ExprIdent
	ExprBinary
	ExprCall
	ExprFunc
	ExprRecord
)

// Expr is an expression node. Payload fields are populated according to
// Kind and ignored otherwise.
type Expr struct {
	Kind ExprKind
	Span source.Span

	Int   int64   // ExprIntLit (raw bits)
	Float float64 // ExprFloatLit
	Name  string  // ExprIdent

	Op    Op    // ExprBinary
	Left  *Expr // ExprBinary
	Right *Expr // ExprBinary

	Callee *Expr   // ExprCall
	Args   []*Expr // ExprCall, in source order

	Params []Param // ExprFunc parameters, ExprRecord fields
	Rets   []Param // ExprFunc return parameters
	Body   *Stmt   // ExprFunc body, optional
}

// StmtKind enumerates statement node forms.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtDecl
	StmtExpr
	StmtList
)

// Stmt is a statement node.
type Stmt struct {
	Kind StmtKind
	Span source.Span

	Name string   // StmtDecl identifier
	Type *TypeSyn // StmtDecl annotation, optional
	Init *Expr    // StmtDecl initializer, optional

	Expr *Expr // StmtExpr

	Items []*Stmt // StmtList
}

// Program is an ordered sequence of top-level statements.
type Program struct {
	Stmts []*Stmt
}

// Expression constructors ----------------------------------------------------

// IntLit builds an integer literal carrying raw bits.
func IntLit(v int64, span source.Span) *Expr {
	return &Expr{Kind: ExprIntLit, Int: v, Span: span}
}

// FloatLit builds a float literal.
func FloatLit(v float64, span source.Span) *Expr {
	return &Expr{Kind: ExprFloatLit, Float: v, Span: span}
}

// Ident builds an identifier reference.
func Ident(name string, span source.Span) *Expr {
	return &Expr{Kind: ExprIdent, Name: name, Span: span}
}

// Binary builds a binary expression.
func Binary(op Op, left, right *Expr) *Expr {
	span := left.Span.Cover(right.Span)
	return &Expr{Kind: ExprBinary, Op: op, Left: left, Right: right, Span: span}
}

// Call builds a function call.
func Call(callee *Expr, args ...*Expr) *Expr {
	span := callee.Span
	for _, a := range args {
		span = span.Cover(a.Span)
	}
	return &Expr{Kind: ExprCall, Callee: callee, Args: args, Span: span}
}

// FuncLit builds a function literal. Body may be nil.
func FuncLit(params, rets []Param, body *Stmt, span source.Span) *Expr {
	return &Expr{Kind: ExprFunc, Params: params, Rets: rets, Body: body, Span: span}
}

// RecordLit builds a record literal with an ordered field list.
func RecordLit(fields []Param, span source.Span) *Expr {
	return &Expr{Kind: ExprRecord, Params: fields, Span: span}
}

// Statement constructors -----------------------------------------------------

// Decl builds a declaration statement. Annotation and initializer may be nil.
func Decl(name string, ty *TypeSyn, init *Expr, span source.Span) *Stmt {
	return &Stmt{Kind: StmtDecl, Name: name, Type: ty, Init: init, Span: span}
}

// ExprStmt wraps an expression as a statement.
func ExprStmt(expr *Expr) *Stmt {
	return &Stmt{Kind: StmtExpr, Expr: expr, Span: expr.Span}
}

// List bundles statements into one list statement.
func List(items ...*Stmt) *Stmt {
	s := &Stmt{Kind: StmtList, Items: items}
	if len(items) > 0 {
		s.Span = items[0].Span
		for _, it := range items[1:] {
			s.Span = s.Span.Cover(it.Span)
		}
	}
	return s
}

// IsDotted reports whether e is a member-access binary expression with both
// operands present. The scope manager uses the shape to resolve chained
// member mutation.
func (e *Expr) IsDotted() bool {
	return e != nil && e.Kind == ExprBinary && e.Op == OpDot && e.Left != nil && e.Right != nil
}
