package wiresim

import (
	"fmt"

	"github.com/wiresim/wiresim/bristol"
	"github.com/wiresim/wiresim/circuit"
	"github.com/wiresim/wiresim/number"
)

// Simulate runs a parsed circuit description once over name-keyed
// values: it compiles the description, seeds the named inputs and the
// description's own constants, and returns the outputs keyed by their
// names from the circuit info. A missing input name fails the run; no
// partial output map is ever returned.
func Simulate[N number.Number[N]](bc *bristol.Circuit, inputs map[string]N) (map[string]N, error) {
	c, seed, err := bristol.Compile[N](bc)
	if err != nil {
		return nil, err
	}

	for name, wire := range bc.Info.InputNameToWireIndex {
		v, ok := inputs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", circuit.ErrMissingInput, name)
		}
		seed[wire] = v
	}

	wireOutputs, err := circuit.NewExecutor(c).Run(seed)
	if err != nil {
		return nil, err
	}

	outputs := make(map[string]N, len(bc.Info.OutputNameToWireIndex))
	for name, wire := range bc.Info.OutputNameToWireIndex {
		outputs[name] = wireOutputs[wire]
	}
	return outputs, nil
}
