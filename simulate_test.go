package wiresim_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/wiresim/wiresim"
	"github.com/wiresim/wiresim/bristol"
	"github.com/wiresim/wiresim/circuit"
	"github.com/wiresim/wiresim/number"
)

func TestSimulateXMulX(t *testing.T) {
	bc, err := bristol.ParseCircuit(bristol.Info{
		InputNameToWireIndex:  map[string]int{"x": 0},
		OutputNameToWireIndex: map[string]int{"y": 1},
	}, `
1 2
1 1
1 1

2 1 0 0 1 AMul
`)
	require.NoError(t, err)

	outputs, err := wiresim.Simulate(bc, map[string]number.U32{"x": 5})
	require.NoError(t, err)
	require.Equal(t, map[string]number.U32{"y": 25}, outputs)
}

func TestSimulateMissingNamedInput(t *testing.T) {
	bc, err := bristol.ParseCircuit(bristol.Info{
		InputNameToWireIndex:  map[string]int{"x": 0},
		OutputNameToWireIndex: map[string]int{"y": 1},
	}, "1 2\n1 1\n1 1\n2 1 0 0 1 AMul\n")
	require.NoError(t, err)

	outputs, err := wiresim.Simulate(bc, map[string]number.U32{"z": 5})
	require.ErrorIs(t, err, circuit.ErrMissingInput)
	require.Nil(t, outputs)
}

func TestSimulateConstants(t *testing.T) {
	// y = x + 100, with 100 coming from the circuit info
	bc, err := bristol.ParseCircuit(bristol.Info{
		InputNameToWireIndex: map[string]int{"x": 0},
		Constants: map[string]bristol.ConstantInfo{
			"offset": {Value: "100", WireIndex: 1},
		},
		OutputNameToWireIndex: map[string]int{"y": 2},
	}, "1 3\n1 1\n1 1\n2 1 0 1 2 AAdd\n")
	require.NoError(t, err)

	outputs, err := wiresim.Simulate(bc, map[string]number.U32{"x": 23})
	require.NoError(t, err)
	require.Equal(t, map[string]number.U32{"y": 123}, outputs)
}

func TestSimulateMatrixMul(t *testing.T) {
	var info bristol.Info
	require.NoError(t, json.Unmarshal([]byte(`
{
  "input_name_to_wire_index": {
    "a11": 0, "a12": 1, "a21": 2, "a22": 3,
    "b11": 4, "b12": 5, "b21": 6, "b22": 7
  },
  "constants": {},
  "output_name_to_wire_index": {
    "c11": 10, "c12": 13, "c21": 16, "c22": 19
  }
}
`), &info))

	bc, err := bristol.ParseCircuit(info, `
12 20
8 1 1 1 1 1 1 1 1
4 1 1 1 1

2 1 0 4 8 AMul
2 1 1 6 9 AMul
2 1 8 9 10 AAdd
2 1 0 5 11 AMul
2 1 1 7 12 AMul
2 1 11 12 13 AAdd
2 1 2 4 14 AMul
2 1 3 6 15 AMul
2 1 14 15 16 AAdd
2 1 2 5 17 AMul
2 1 3 7 18 AMul
2 1 17 18 19 AAdd
`)
	require.NoError(t, err)

	// [1 2]   [1 1]   [3 3]
	// [3 4] x [1 1] = [7 7]
	outputs, err := wiresim.Simulate(bc, map[string]number.U32{
		"a11": 1, "a12": 2, "a21": 3, "a22": 4,
		"b11": 1, "b12": 1, "b21": 1, "b22": 1,
	})
	require.NoError(t, err)

	want := map[string]number.U32{"c11": 3, "c12": 3, "c21": 7, "c22": 7}
	require.Empty(t, cmp.Diff(want, outputs))
}

func TestSimulateBN254(t *testing.T) {
	bc, err := bristol.ParseCircuit(bristol.Info{
		InputNameToWireIndex:  map[string]int{"x": 0, "y": 1},
		OutputNameToWireIndex: map[string]int{"q": 2},
	}, "1 3\n2 1 1\n1 1\n2 1 0 1 2 ADiv\n")
	require.NoError(t, err)

	outputs, err := wiresim.Simulate(bc, map[string]number.BN254{
		"x": number.NewBN254(21),
		"y": number.NewBN254(3),
	})
	require.NoError(t, err)
	require.Equal(t, map[string]number.BN254{"q": number.NewBN254(7)}, outputs)
}

func TestVersion(t *testing.T) {
	require.Equal(t, uint64(0), wiresim.Version.Major)
}
