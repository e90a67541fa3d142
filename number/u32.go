package number

import (
	"fmt"
	"strconv"

	"github.com/wiresim/wiresim/gate"
)

// U32 is a 32-bit unsigned integer value. Arithmetic wraps modulo
// 2^32; comparison and boolean operations yield 0 or 1; ADiv (field
// division) is unsupported, use AIntDiv.
type U32 uint32

func (U32) Zero() U32 { return 0 }

func (U32) SetString(s string) (U32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 32-bit unsigned integer", ErrParse, s)
	}
	return U32(n), nil
}

func (x U32) String() string {
	return strconv.FormatUint(uint64(x), 10)
}

func b32(b bool) U32 {
	if b {
		return 1
	}
	return 0
}

func (x U32) Apply(op gate.Op, rhs U32) (U32, error) {
	switch op {
	case gate.Add:
		return x + rhs, nil
	case gate.Sub:
		return x - rhs, nil
	case gate.Mul:
		return x * rhs, nil
	case gate.Div:
		return 0, fmt.Errorf("%w: %v on u32", ErrUnsupportedOp, op)
	case gate.IntDiv:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return x / rhs, nil
	case gate.Mod:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return x % rhs, nil
	case gate.Pow:
		return x.pow(rhs), nil
	case gate.Eq:
		return b32(x == rhs), nil
	case gate.Neq:
		return b32(x != rhs), nil
	case gate.Lt:
		return b32(x < rhs), nil
	case gate.Leq:
		return b32(x <= rhs), nil
	case gate.Gt:
		return b32(x > rhs), nil
	case gate.Geq:
		return b32(x >= rhs), nil
	case gate.ShiftL:
		return x << rhs, nil
	case gate.ShiftR:
		return x >> rhs, nil
	case gate.BitAnd:
		return x & rhs, nil
	case gate.BitOr:
		return x | rhs, nil
	case gate.Xor:
		return x ^ rhs, nil
	case gate.BoolAnd:
		return b32(x != 0 && rhs != 0), nil
	case gate.BoolOr:
		return b32(x != 0 || rhs != 0), nil
	}
	return 0, fmt.Errorf("%w: %v on u32", ErrUnsupportedOp, op)
}

// pow is exponentiation by squaring, wrapping like the other u32
// arithmetic.
func (x U32) pow(e U32) U32 {
	var r U32 = 1
	for e > 0 {
		if e&1 == 1 {
			r *= x
		}
		x *= x
		e >>= 1
	}
	return r
}
