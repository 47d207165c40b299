package value

import "tern/internal/render"

// Label implements render.Node.
func (v Value) Label() string {
	switch v.Kind {
	case VKFunc:
		return "Function"
	case VKRecord:
		return "Record Instance"
	case VKEmpty:
		return "Empty"
	default:
		return v.String() + " : " + v.Type.String()
	}
}

// Children implements render.Node.
func (v Value) Children() []render.Node {
	switch v.Kind {
	case VKRecord:
		out := make([]render.Node, 0, len(v.Members))
		for _, m := range v.Members {
			out = append(out, render.Group{Name: m.Name, Items: []render.Node{m.Value}})
		}
		return out
	case VKFunc:
		return []render.Node{render.Leaf(v.Type.String())}
	default:
		return nil
	}
}
