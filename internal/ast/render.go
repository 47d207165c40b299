package ast

import (
	"fmt"

	"tern/internal/render"
)

// Label implements render.Node.
func (e *Expr) Label() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ExprIntLit:
		return fmt.Sprintf("Integer %d", e.Int)
	case ExprFloatLit:
		return fmt.Sprintf("Float %g", e.Float)
	case ExprIdent:
		return "Ident " + e.Name
	case ExprBinary:
		return "Binary " + e.Op.String()
	case ExprCall:
		return "Call"
	case ExprFunc:
		return "Function"
	case ExprRecord:
		return "Record"
	default:
		return "<invalid expr>"
	}
}

// Children implements render.Node.
func (e *Expr) Children() []render.Node {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ExprBinary:
		return []render.Node{e.Left, e.Right}
	case ExprCall:
		out := []render.Node{e.Callee}
		for _, a := range e.Args {
			out = append(out, a)
		}
		return out
	case ExprFunc:
		out := []render.Node{
			render.Group{Name: "Parameters", Items: paramNodes(e.Params)},
			render.Group{Name: "Returns", Items: paramNodes(e.Rets)},
		}
		if e.Body != nil {
			out = append(out, e.Body)
		}
		return out
	case ExprRecord:
		return paramNodes(e.Params)
	default:
		return nil
	}
}

// Label implements render.Node.
func (s *Stmt) Label() string {
	if s == nil {
		return "<nil>"
	}
	switch s.Kind {
	case StmtDecl:
		return "Decl " + s.Name
	case StmtExpr:
		return "ExprStmt"
	case StmtList:
		return fmt.Sprintf("List (%d)", len(s.Items))
	default:
		return "<invalid stmt>"
	}
}

// Children implements render.Node.
func (s *Stmt) Children() []render.Node {
	if s == nil {
		return nil
	}
	switch s.Kind {
	case StmtDecl:
		var out []render.Node
		if s.Type != nil {
			out = append(out, render.Leaf("type "+s.Type.String()))
		}
		if s.Init != nil {
			out = append(out, s.Init)
		}
		return out
	case StmtExpr:
		return []render.Node{s.Expr}
	case StmtList:
		out := make([]render.Node, 0, len(s.Items))
		for _, it := range s.Items {
			out = append(out, it)
		}
		return out
	default:
		return nil
	}
}

func paramNodes(params []Param) []render.Node {
	out := make([]render.Node, 0, len(params))
	for _, p := range params {
		name := p.Name
		if !p.HasName {
			name = "_"
		}
		out = append(out, render.Leaf(name+": "+p.Type.String()))
	}
	return out
}
