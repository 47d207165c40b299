package types

// Equal reports exact structural equality of two types. The call protocol
// uses it to compare argument types against declared parameter types; no
// coercion is applied here.
func Equal(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindInt:
		return a.Width == b.Width && a.Signed == b.Signed
	case KindFloat:
		return a.Width == b.Width
	case KindFunc:
		return fnEqual(a.Fn, b.Fn)
	case KindRecord:
		return paramsEqual(a.Fields, b.Fields)
	case KindSymbol:
		return a.Scope == b.Scope
	default:
		return true
	}
}

func fnEqual(a, b *FnInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return paramsEqual(a.Params, b.Params) && paramsEqual(a.Rets, b.Rets)
}

func paramsEqual(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !Equal(a[i].Type, b[i].Type) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether the type participates in arithmetic.
func (t Type) IsNumeric() bool {
	switch t.Kind {
	case KindCoercibleInt, KindCoercibleFloat, KindInt, KindFloat:
		return true
	default:
		return false
	}
}
