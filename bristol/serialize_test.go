package bristol_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/wiresim/wiresim/bristol"
)

func adderCircuit(t *testing.T) *bristol.Circuit {
	t.Helper()
	info := bristol.Info{
		InputNameToWireIndex: map[string]int{"a": 0, "b": 1},
		Constants: map[string]bristol.ConstantInfo{
			"k": {Value: "10", WireIndex: 2},
		},
		OutputNameToWireIndex: map[string]int{"out": 4},
	}
	c, err := bristol.ParseCircuit(info, `
2 5
2 1 1
1 1

2 1 0 1 3 AAdd
2 1 3 2 4 AMul
`)
	require.NoError(t, err)
	return c
}

func TestTextRoundTrip(t *testing.T) {
	c := adderCircuit(t)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))

	again, err := bristol.ReadCircuit(c.Info, &buf)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(c, again))
}

func TestBinaryRoundTrip(t *testing.T) {
	c := adderCircuit(t)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	var again bristol.Circuit
	_, err = again.ReadFrom(&buf)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(*c, again))
}

func TestBinaryRejectsGarbage(t *testing.T) {
	var c bristol.Circuit
	_, err := c.ReadFrom(bytes.NewReader([]byte("not cbor at all")))
	require.Error(t, err)
}
