package number

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/wiresim/wiresim/gate"
)

// BN254 is a scalar field element of the BN254 curve, backed by
// gnark-crypto. Add, Sub, Mul and Div are field operations; Eq and Neq
// yield 0 or 1. Order, shift, bit and power operations have no field
// meaning and return ErrUnsupportedOp.
type BN254 struct {
	e fr.Element
}

// NewBN254 returns the field element for x.
func NewBN254(x uint64) BN254 {
	var v BN254
	v.e.SetUint64(x)
	return v
}

func (BN254) Zero() BN254 { return BN254{} }

func (BN254) SetString(s string) (BN254, error) {
	var b big.Int
	if _, ok := b.SetString(s, 10); !ok {
		return BN254{}, fmt.Errorf("%w: %q is not a decimal field element", ErrParse, s)
	}
	var v BN254
	v.e.SetBigInt(&b)
	return v, nil
}

func (x BN254) String() string {
	return x.e.String()
}

func (x BN254) Apply(op gate.Op, rhs BN254) (BN254, error) {
	var v BN254
	switch op {
	case gate.Add:
		v.e.Add(&x.e, &rhs.e)
	case gate.Sub:
		v.e.Sub(&x.e, &rhs.e)
	case gate.Mul:
		v.e.Mul(&x.e, &rhs.e)
	case gate.Div:
		if rhs.e.IsZero() {
			return BN254{}, ErrDivisionByZero
		}
		v.e.Div(&x.e, &rhs.e)
	case gate.Eq:
		if x.e.Equal(&rhs.e) {
			v.e.SetOne()
		}
	case gate.Neq:
		if !x.e.Equal(&rhs.e) {
			v.e.SetOne()
		}
	default:
		return BN254{}, fmt.Errorf("%w: %v on bn254 field element", ErrUnsupportedOp, op)
	}
	return v, nil
}
