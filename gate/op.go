// Package gate provides ready-made components for the circuit engine:
// two-input arithmetic gates over any operand type that understands the
// gate operation set, and boolean logic gates.
package gate

import "fmt"

// Op is a two-input gate operation. The string form of each operation
// is its spelling in arithmetic circuit descriptions ("AAdd", "AMul",
// ...).
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	Div
	IntDiv
	Mod
	Pow
	Eq
	Neq
	Lt
	Leq
	Gt
	Geq
	ShiftL
	ShiftR
	BitAnd
	BitOr
	Xor
	BoolAnd
	BoolOr
)

var opNames = map[Op]string{
	Add:     "AAdd",
	Sub:     "ASub",
	Mul:     "AMul",
	Div:     "ADiv",
	IntDiv:  "AIntDiv",
	Mod:     "AMod",
	Pow:     "APow",
	Eq:      "AEq",
	Neq:     "ANeq",
	Lt:      "ALt",
	Leq:     "ALEq",
	Gt:      "AGt",
	Geq:     "AGEq",
	ShiftL:  "AShiftL",
	ShiftR:  "AShiftR",
	BitAnd:  "ABitAnd",
	BitOr:   "ABitOr",
	Xor:     "AXor",
	BoolAnd: "ABoolAnd",
	BoolOr:  "ABoolOr",
}

var opValues = func() map[string]Op {
	m := make(map[string]Op, len(opNames))
	for op, name := range opNames {
		m[name] = op
	}
	return m
}()

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// ParseOp converts the circuit-description spelling of an operation
// back to its Op value.
func ParseOp(s string) (Op, error) {
	op, ok := opValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown gate operation %q", s)
	}
	return op, nil
}

// MarshalText implements encoding.TextMarshaler so that Op fields
// round-trip through JSON as their description spelling.
func (op Op) MarshalText() ([]byte, error) {
	name, ok := opNames[op]
	if !ok {
		return nil, fmt.Errorf("unknown gate operation %d", uint8(op))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Op) UnmarshalText(text []byte) error {
	v, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*op = v
	return nil
}
