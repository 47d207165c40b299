// Package render draws evaluator entities (values, scopes, AST nodes) as
// text trees and prints diagnostics.
package render

// Node is the read-only introspection surface every renderable entity
// exposes: a label plus enumerable named children. Rendering has no
// semantic effect on the entity.
type Node interface {
	Label() string
	Children() []Node
}

// Group bundles an explicit label with pre-built children. It is used to
// attach synthetic grouping nodes ("Children", "Members") to a tree.
type Group struct {
	Name  string
	Items []Node
}

func (g Group) Label() string    { return g.Name }
func (g Group) Children() []Node { return g.Items }

// Leaf is a node without children.
type Leaf string

func (l Leaf) Label() string    { return string(l) }
func (l Leaf) Children() []Node { return nil }
