package scope

import (
	"tern/internal/ast"
	"tern/internal/value"
)

// Manager maintains the active-scope stack over the scope graph. Name
// resolution only ever searches nodes on the stack, innermost first; the
// static shape of the graph beyond the stack is invisible. The stack grows
// on function entry and shrinks on exit, and the root stays pushed for the
// manager's whole lifetime.
type Manager struct {
	arena *Arena
	root  ID
	stack []ID // innermost last
}

// NewManager creates a manager over arena with root as the initial (and
// permanent) bottom of the active-scope stack.
func NewManager(arena *Arena, root ID) *Manager {
	stack := make([]ID, 0, 20)
	stack = append(stack, root)
	return &Manager{arena: arena, root: root, stack: stack}
}

// Arena exposes the node storage for introspection.
func (m *Manager) Arena() *Arena { return m.arena }

// Root returns the module root node ID.
func (m *Manager) Root() ID { return m.root }

// Depth reports the current active-scope stack depth.
func (m *Manager) Depth() int { return len(m.stack) }

// PushScope makes id the innermost active scope.
func (m *Manager) PushScope(id ID) {
	m.stack = append(m.stack, id)
}

// PopScope removes and returns the innermost active scope. Popping never
// destroys the node. The root must stay on the stack; popping it is a
// protocol violation by the caller.
func (m *Manager) PopScope() ID {
	if len(m.stack) == 0 {
		panic("scope: pop on empty stack")
	}
	id := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return id
}

// EnterFrame activates id as a call frame: the active stack becomes just
// the root plus id, so the callee resolves names via its captured node and
// the root but never via the caller's suspended frames. The returned
// function restores the caller's stack; callers must invoke it on every
// exit path.
func (m *Manager) EnterFrame(id ID) (leave func()) {
	saved := m.stack
	m.stack = []ID{m.root, id}
	return func() {
		m.stack = saved
	}
}

// FindSymbol searches the active-scope stack from innermost to outermost
// for a node whose direct children contain name.
func (m *Manager) FindSymbol(name string) (ID, bool) {
	for i := len(m.stack) - 1; i >= 0; i-- {
		node := m.arena.Get(m.stack[i])
		if node == nil {
			continue
		}
		if child, ok := node.Children[name]; ok {
			return child, true
		}
	}
	return NoID, false
}

// UpdateValue overwrites the resolved node's value in place and returns the
// previous one, or inserts a new child under the innermost active scope and
// returns false.
func (m *Manager) UpdateValue(name string, v ScopeValue) (ScopeValue, bool) {
	if id, ok := m.FindSymbol(name); ok {
		node := m.arena.Get(id)
		old := node.Value
		node.Value = v
		return old, true
	}
	m.InsertValue(name, v)
	return ScopeValue{}, false
}

// InsertValue unconditionally inserts a new child under the innermost
// active scope and returns its ID. The stack is never empty by
// construction; an empty stack here is a programming error.
func (m *Manager) InsertValue(name string, v ScopeValue) ID {
	if len(m.stack) == 0 {
		panic("scope: insert with no active scope")
	}
	id := m.arena.New(v)
	innermost := m.arena.Get(m.stack[len(m.stack)-1])
	innermost.Children[name] = id
	return id
}

// FollowMemberAccessMut resolves a dotted path against record-instance
// bindings and applies mutate to the resolved member in place. Exactly two
// shapes resolve: ident.ident, and (ident.ident).ident. The return value
// reports whether the base resolved to a record instance; a missing member
// on a resolved base still reports true and applies nothing, matching the
// update semantics of assignment.
func (m *Manager) FollowMemberAccessMut(left, right *ast.Expr, mutate func(*value.Value)) bool {
	switch {
	case left != nil && left.Kind == ast.ExprIdent && right != nil && right.Kind == ast.ExprIdent:
		return m.mutateDirectMember(left.Name, right.Name, mutate)

	case left.IsDotted() && right != nil && right.Kind == ast.ExprIdent:
		member := right.Name
		return m.followInnerMember(left.Left, left.Right, func(cv *value.Value) {
			if cv.Kind != value.VKRecord {
				return
			}
			if slot := recordMember(cv, member); slot != nil {
				mutate(slot)
			}
		})
	}
	return false
}

// mutateDirectMember handles the ident.ident shape.
func (m *Manager) mutateDirectMember(base, member string, mutate func(*value.Value)) bool {
	return m.followInnerMember(&ast.Expr{Kind: ast.ExprIdent, Name: base}, &ast.Expr{Kind: ast.ExprIdent, Name: member}, mutate)
}

// followInnerMember resolves left as a record-instance binding and hands a
// pointer to its right member to mutate.
func (m *Manager) followInnerMember(left, right *ast.Expr, mutate func(*value.Value)) bool {
	if left == nil || left.Kind != ast.ExprIdent || right == nil || right.Kind != ast.ExprIdent {
		return false
	}
	id, ok := m.FindSymbol(left.Name)
	if !ok {
		return false
	}
	node := m.arena.Get(id)
	if node == nil || node.Value.Kind != EntryBinding || node.Value.Binding.Kind != value.VKRecord {
		return false
	}
	if slot := recordMember(&node.Value.Binding, right.Name); slot != nil {
		mutate(slot)
	}
	return true
}

// recordMember returns a pointer to the named member's value or nil.
func recordMember(v *value.Value, name string) *value.Value {
	for i := range v.Members {
		if v.Members[i].Name == name {
			return &v.Members[i].Value
		}
	}
	return nil
}
