// Package number provides the value types the gate package operates
// on: a 32-bit unsigned integer and a BN254 scalar field element, both
// behind a common generic constraint.
package number

import (
	"errors"

	"github.com/wiresim/wiresim/gate"
)

// Number is the constraint a value type must satisfy to flow through
// arithmetic circuits: gate-operation application, string conversion
// both ways, and comparability (so values can key maps and be compared
// in tests).
type Number[N any] interface {
	comparable
	gate.Operand[N]
	// Zero returns the additive identity.
	Zero() N
	// SetString parses s and returns the parsed value. The receiver is
	// only a namespace; its own value is ignored.
	SetString(s string) (N, error)
	String() string
}

var (
	// ErrDivisionByZero is returned by division and modulo operations
	// with a zero right-hand side.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnsupportedOp is returned when a value type has no meaning
	// for the requested operation.
	ErrUnsupportedOp = errors.New("unsupported operation")
	// ErrParse is returned by SetString for malformed input.
	ErrParse = errors.New("parse error")
)
