package ast

import "fmt"

// Op enumerates binary operators the evaluator understands.
type Op uint8

const (
	OpInvalid Op = iota
	OpAssign     // =
	OpDot        // . member access
	OpAdd        // +
	OpSub        // -
	OpMul        // *
	OpDiv        // /
	OpPow        // ^
)

func (o Op) String() string {
	switch o {
	case OpAssign:
		return "="
	case OpDot:
		return "."
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return fmt.Sprintf("Op(%d)", o)
	}
}
