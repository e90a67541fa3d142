package bristol

import (
	"fmt"
	"sort"

	"github.com/wiresim/wiresim/circuit"
	"github.com/wiresim/wiresim/gate"
	"github.com/wiresim/wiresim/logger"
	"github.com/wiresim/wiresim/number"
)

// Compile translates a parsed description into an executable circuit
// over the value type N.
//
// Named input wires and constant wires both become circuit inputs;
// constants are seeded at run time exactly like per-run inputs, so
// Compile also returns their parsed values keyed by wire, ready to be
// merged into the input map of every run. Gates are added in
// description order, which the format guarantees is a valid evaluation
// order; the builder rejects descriptions that violate it.
func Compile[N number.Number[N]](bc *Circuit) (*circuit.Circuit[N], map[int]N, error) {
	constants := make(map[int]N, len(bc.Info.Constants))
	var parse N
	for name, c := range bc.Info.Constants {
		v, err := parse.SetString(c.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("constant %q: %w", name, err)
		}
		constants[c.WireIndex] = v
	}

	inputWires := make([]int, 0, len(bc.Info.InputNameToWireIndex)+len(constants))
	for _, wire := range bc.Info.InputNameToWireIndex {
		inputWires = append(inputWires, wire)
	}
	for wire := range constants {
		inputWires = append(inputWires, wire)
	}
	sort.Ints(inputWires)

	outputWires := make([]int, 0, len(bc.Info.OutputNameToWireIndex))
	for _, wire := range bc.Info.OutputNameToWireIndex {
		outputWires = append(outputWires, wire)
	}
	sort.Ints(outputWires)

	b := circuit.NewBuilder[N](circuit.WithCapacityHint(bc.WireCount))
	if err := b.AddInputs(inputWires...); err != nil {
		return nil, nil, err
	}
	for _, g := range bc.Gates {
		if err := b.AddComponent(gate.NewArith[N](g.Op, g.LhIn, g.RhIn, g.Out)); err != nil {
			return nil, nil, err
		}
	}
	if err := b.AddOutputs(outputWires...); err != nil {
		return nil, nil, err
	}
	c, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	log := logger.Logger()
	log.Info().
		Int("gates", c.Size()).
		Int("wires", bc.WireCount).
		Int("slots", c.SlotCount()).
		Msg("compiled bristol circuit")

	return c, constants, nil
}
