package scope

import (
	"sort"

	"tern/internal/render"
	"tern/internal/types"
)

// Label implements render.Node.
func (sv ScopeValue) Label() string {
	switch sv.Kind {
	case EntryBinding:
		if sv.Binding.Type.Kind == types.KindFunc {
			return "Function"
		}
		return "Constant Value"
	case EntryRecord:
		return "Record"
	case EntryModule:
		return "Module"
	default:
		return "<invalid>"
	}
}

// Children implements render.Node.
func (sv ScopeValue) Children() []render.Node {
	switch sv.Kind {
	case EntryBinding:
		return sv.Binding.Children()
	case EntryRecord:
		out := make([]render.Node, 0, len(sv.Fields))
		for _, f := range sv.Fields {
			out = append(out, render.Leaf(f.Name+": "+f.Type.String()))
		}
		return []render.Node{render.Group{Name: "Members", Items: out}}
	default:
		return nil
	}
}

// treeNode adapts an arena node to render.Node; children are listed in
// name order for deterministic output.
type treeNode struct {
	arena *Arena
	id    ID
	name  string
}

func (t treeNode) Label() string {
	node := t.arena.Get(t.id)
	if node == nil {
		return t.name
	}
	if t.name == "" {
		return node.Value.Label()
	}
	return t.name + ": " + node.Value.Label()
}

func (t treeNode) Children() []render.Node {
	node := t.arena.Get(t.id)
	if node == nil {
		return nil
	}
	out := node.Value.Children()
	if len(node.Children) == 0 {
		return out
	}
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	kids := make([]render.Node, 0, len(names))
	for _, name := range names {
		kids = append(kids, treeNode{arena: t.arena, id: node.Children[name], name: name})
	}
	return append(out, render.Group{Name: "Children", Items: kids})
}

// RenderRoot returns a render.Node over the whole scope graph reachable
// from the root.
func (m *Manager) RenderRoot() render.Node {
	return treeNode{arena: m.arena, id: m.root, name: ""}
}
