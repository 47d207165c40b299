// Package scope implements the scope graph and the active-scope stack the
// evaluator resolves names against. Nodes live in a slice-backed arena and
// are addressed by stable IDs, so a function value can capture its
// declaration node without reference counting.
package scope

import (
	"tern/internal/types"
	"tern/internal/value"
)

// ID references a node in the scope arena. It is an alias of types.ScopeID
// so typed values can point back into the graph without an import cycle.
type ID = types.ScopeID

// NoID marks the absence of a node reference.
const NoID = types.NoScopeID

// EntryKind enumerates what a scope node holds.
type EntryKind uint8

const (
	EntryInvalid EntryKind = iota
	EntryBinding           // a runtime value bound to a name
	EntryRecord            // a record declaration
	EntryModule            // the root marker
)

func (k EntryKind) String() string {
	switch k {
	case EntryBinding:
		return "binding"
	case EntryRecord:
		return "record"
	case EntryModule:
		return "module"
	default:
		return "invalid"
	}
}

// ScopeValue is the single value a scope node carries.
type ScopeValue struct {
	Kind    EntryKind
	Binding value.Value   // EntryBinding
	Ident   string        // EntryRecord
	Fields  []types.Param // EntryRecord, ordered field list
}

// BindingEntry wraps a runtime value.
func BindingEntry(v value.Value) ScopeValue {
	return ScopeValue{Kind: EntryBinding, Binding: v}
}

// RecordEntry wraps a record declaration.
func RecordEntry(ident string, fields []types.Param) ScopeValue {
	return ScopeValue{Kind: EntryRecord, Ident: ident, Fields: fields}
}

// ModuleEntry marks a module root node.
func ModuleEntry() ScopeValue {
	return ScopeValue{Kind: EntryModule}
}

// Node is one scope-graph node: one value plus named children, mutated in
// place for the node's whole lifetime.
type Node struct {
	Value    ScopeValue
	Children map[string]ID
}
