package diag

import "fmt"

// Code identifies a diagnostic kind. Evaluation codes live in the 4000
// range; lower ranges stay reserved for front-end phases that produce the
// AST this module consumes.
type Code uint16

const (
	UnknownCode Code = 0

	// Evaluation
	EvalInfo                Code = 4000
	EvalTypeMismatch        Code = 4001
	EvalUnresolvedIdent     Code = 4002
	EvalNotCallable         Code = 4003
	EvalBadMemberAccess     Code = 4004
	EvalUnsupportedOperands Code = 4005
	EvalFieldMismatch       Code = 4006
	EvalDivideByZero        Code = 4007
)

func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
