package scope

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena stores all allocated scope nodes in a compact slice. Each evaluator
// owns exactly one arena; IDs stay valid for the arena's lifetime and nodes
// are never destroyed, so captured-scope references cannot dangle.
type Arena struct {
	data []Node
}

// NewArena creates an arena with optional capacity hint.
func NewArena(capacity uint32) *Arena {
	if capacity == 0 {
		capacity = 32
	}
	return &Arena{
		data: make([]Node, 1, capacity+1), // index 0 reserved for NoID
	}
}

// New allocates a node holding value and returns its ID.
func (a *Arena) New(value ScopeValue) ID {
	raw, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("scope arena overflow: %w", err))
	}
	id := ID(raw)
	a.data = append(a.data, Node{
		Value:    value,
		Children: make(map[string]ID),
	})
	return id
}

// Get returns the node pointer or nil if the ID is invalid.
func (a *Arena) Get(id ID) *Node {
	if !id.IsValid() || int(id) >= len(a.data) {
		return nil
	}
	return &a.data[id]
}

// Len reports the number of allocated nodes excluding the sentinel.
func (a *Arena) Len() int { return len(a.data) - 1 }
