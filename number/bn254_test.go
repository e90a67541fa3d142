package number_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wiresim/wiresim/gate"
	"github.com/wiresim/wiresim/number"
)

func TestBN254FieldOps(t *testing.T) {
	three := number.NewBN254(3)
	seven := number.NewBN254(7)

	sum, err := three.Apply(gate.Add, seven)
	require.NoError(t, err)
	require.Equal(t, number.NewBN254(10), sum)

	prod, err := three.Apply(gate.Mul, seven)
	require.NoError(t, err)
	require.Equal(t, number.NewBN254(21), prod)

	diff, err := seven.Apply(gate.Sub, three)
	require.NoError(t, err)
	require.Equal(t, number.NewBN254(4), diff)

	// subtraction wraps around the field order, not zero
	neg, err := three.Apply(gate.Sub, seven)
	require.NoError(t, err)
	back, err := neg.Apply(gate.Add, seven)
	require.NoError(t, err)
	require.Equal(t, three, back)
}

func TestBN254Division(t *testing.T) {
	three := number.NewBN254(3)
	twentyOne := number.NewBN254(21)

	q, err := twentyOne.Apply(gate.Div, three)
	require.NoError(t, err)
	require.Equal(t, number.NewBN254(7), q)

	// division is exact in the field even when integers are not
	seven := number.NewBN254(7)
	half, err := three.Apply(gate.Div, seven)
	require.NoError(t, err)
	check, err := half.Apply(gate.Mul, seven)
	require.NoError(t, err)
	require.Equal(t, three, check)

	_, err = three.Apply(gate.Div, number.NewBN254(0))
	require.ErrorIs(t, err, number.ErrDivisionByZero)
}

func TestBN254Comparisons(t *testing.T) {
	five := number.NewBN254(5)

	eq, err := five.Apply(gate.Eq, number.NewBN254(5))
	require.NoError(t, err)
	require.Equal(t, number.NewBN254(1), eq)

	neq, err := five.Apply(gate.Neq, number.NewBN254(5))
	require.NoError(t, err)
	require.Equal(t, number.NewBN254(0), neq)
}

func TestBN254UnsupportedOps(t *testing.T) {
	five := number.NewBN254(5)
	for _, op := range []gate.Op{
		gate.IntDiv, gate.Mod, gate.Pow, gate.Lt, gate.Leq, gate.Gt, gate.Geq,
		gate.ShiftL, gate.ShiftR, gate.BitAnd, gate.BitOr, gate.Xor,
		gate.BoolAnd, gate.BoolOr,
	} {
		_, err := five.Apply(op, five)
		require.ErrorIs(t, err, number.ErrUnsupportedOp, op.String())
	}
}

func TestBN254Strings(t *testing.T) {
	var parse number.BN254

	v, err := parse.SetString("12345678901234567890")
	require.NoError(t, err)
	require.Equal(t, "12345678901234567890", v.String())

	_, err = parse.SetString("not a number")
	require.ErrorIs(t, err, number.ErrParse)
}
