package eval

// Strictness selects which silently-empty evaluation paths get escalated
// to recorded diagnostics. Everything defaults to off, which reproduces
// the historically observed behavior: a failing sub-expression degrades to
// the empty value and the pass continues.
type Strictness struct {
	// UnresolvedIdents reports identifiers that resolve to nothing or to a
	// non-value entry (record declaration, module).
	UnresolvedIdents bool
	// CallTargets reports call expressions whose callee is not a function
	// value.
	CallTargets bool
	// MemberAccess reports member accesses and member assignments whose
	// shape or base fails to resolve.
	MemberAccess bool
	// Operands reports binary expressions over unsupported operator/type
	// pairs.
	Operands bool
	// RecordFields reports member assignments that change a record
	// instance member to a different type than it held.
	RecordFields bool
	// IntegerDivision reports integer division by zero and yields empty
	// instead of letting the division fault.
	IntegerDivision bool
}

// Options configures one evaluator instance.
type Options struct {
	Strict Strictness
	// MaxDiagnostics caps the diagnostic bag; 0 means the default of 100.
	MaxDiagnostics int
}

const defaultMaxDiagnostics = 100

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}
