package test

import (
	"fmt"
	"math/rand"

	"github.com/wiresim/wiresim/circuit"
	"github.com/wiresim/wiresim/gate"
)

// RandomCircuitConfig bounds the shape of a generated circuit.
type RandomCircuitConfig struct {
	Seed     int64
	Inputs   RandRange
	Gates    RandRange
	SubNum   RandRange // nested circuits embedded as components
	SubGates RandRange // gates inside each nested circuit
}

type RandRange struct {
	L int
	R int
}

func (rr RandRange) sample(r *rand.Rand) int {
	return r.Intn(rr.R-rr.L+1) + rr.L
}

// RandomCircuit is a generated boolean DAG together with a flat
// reference trace for checking executor results. Node identifiers are
// deliberately sparse so the builder's compaction is exercised.
type RandomCircuit struct {
	Circuit   *circuit.Circuit[bool]
	InputIDs  []int
	OutputIDs []int

	trace []traceGate
	rand  *rand.Rand
}

type traceGate struct {
	op      gate.LogicOp
	a, b    int
	out     int
	isUnary bool
}

var logicOps = []gate.LogicOp{gate.And, gate.Or, gate.LXor, gate.Nand}

// NewRandomCircuit generates a circuit from conf, deterministically in
// conf.Seed.
func NewRandomCircuit(conf *RandomCircuitConfig) (*RandomCircuit, error) {
	rc := &RandomCircuit{rand: rand.New(rand.NewSource(conf.Seed))}

	nextID := rc.rand.Intn(4)
	freshID := func() int {
		id := nextID
		nextID += 1 + rc.rand.Intn(3)
		return id
	}

	nInputs := conf.Inputs.sample(rc.rand)
	var produced []int
	for i := 0; i < nInputs; i++ {
		id := freshID()
		rc.InputIDs = append(rc.InputIDs, id)
		produced = append(produced, id)
	}

	b := circuit.NewBuilder[bool]()
	if err := b.AddInputs(rc.InputIDs...); err != nil {
		return nil, err
	}

	addGate := func(ab *circuit.Builder[bool], avail []int) (int, error) {
		out := freshID()
		if rc.rand.Intn(8) == 0 {
			a := avail[rc.rand.Intn(len(avail))]
			rc.trace = append(rc.trace, traceGate{op: gate.Not, a: a, out: out, isUnary: true})
			return out, ab.AddComponent(gate.NewNot(a, out))
		}
		op := logicOps[rc.rand.Intn(len(logicOps))]
		a := avail[rc.rand.Intn(len(avail))]
		bb := avail[rc.rand.Intn(len(avail))]
		rc.trace = append(rc.trace, traceGate{op: op, a: a, b: bb, out: out})
		return out, ab.AddComponent(gate.NewLogic(op, a, bb, out))
	}

	nGates := conf.Gates.sample(rc.rand)
	for i := 0; i < nGates; i++ {
		out, err := addGate(b, produced)
		if err != nil {
			return nil, err
		}
		produced = append(produced, out)
	}

	// Nested circuits share the enclosing identifier space: each inner
	// builder declares a few already-produced identifiers as its own
	// boundary inputs and fresh identifiers as its gate outputs, so the
	// built circuit embeds directly.
	nSub := conf.SubNum.sample(rc.rand)
	for i := 0; i < nSub; i++ {
		k := 1 + rc.rand.Intn(3)
		boundary := make([]int, 0, k)
		for j := 0; j < k; j++ {
			boundary = append(boundary, produced[rc.rand.Intn(len(produced))])
		}
		boundary = dedup(boundary)

		ib := circuit.NewBuilder[bool]()
		if err := ib.AddInputs(boundary...); err != nil {
			return nil, err
		}
		avail := append([]int(nil), boundary...)
		var outs []int
		nInner := conf.SubGates.sample(rc.rand)
		for j := 0; j < nInner; j++ {
			out, err := addGate(ib, avail)
			if err != nil {
				return nil, err
			}
			avail = append(avail, out)
			outs = append(outs, out)
		}
		if len(outs) == 0 {
			continue
		}
		if err := ib.AddOutputs(outs...); err != nil {
			return nil, err
		}
		inner, err := ib.Build()
		if err != nil {
			return nil, err
		}
		if err := b.AddComponent(inner); err != nil {
			return nil, err
		}
		produced = append(produced, outs...)
	}

	// Every sink is fair game as a boundary output; keep a random
	// nonempty subset plus the last produced identifier.
	for _, id := range produced[nInputs:] {
		if rc.rand.Intn(3) == 0 {
			rc.OutputIDs = append(rc.OutputIDs, id)
		}
	}
	if len(rc.OutputIDs) == 0 {
		rc.OutputIDs = append(rc.OutputIDs, produced[len(produced)-1])
	}
	if err := b.AddOutputs(rc.OutputIDs...); err != nil {
		return nil, err
	}

	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	rc.Circuit = c
	return rc, nil
}

// RandomInputs draws one input assignment.
func (rc *RandomCircuit) RandomInputs() map[int]bool {
	inputs := make(map[int]bool, len(rc.InputIDs))
	for _, id := range rc.InputIDs {
		inputs[id] = rc.rand.Intn(2) == 1
	}
	return inputs
}

// Reference evaluates the flat gate trace directly, bypassing the
// builder and executor, and returns the values of the boundary
// outputs.
func (rc *RandomCircuit) Reference(inputs map[int]bool) (map[int]bool, error) {
	values := make(map[int]bool, len(inputs)+len(rc.trace))
	for id, v := range inputs {
		values[id] = v
	}
	for _, g := range rc.trace {
		a, ok := values[g.a]
		if !ok {
			return nil, fmt.Errorf("trace reads unset node %d", g.a)
		}
		switch {
		case g.isUnary:
			values[g.out] = !a
		default:
			b := values[g.b]
			switch g.op {
			case gate.And:
				values[g.out] = a && b
			case gate.Or:
				values[g.out] = a || b
			case gate.LXor:
				values[g.out] = a != b
			case gate.Nand:
				values[g.out] = !(a && b)
			}
		}
	}
	outputs := make(map[int]bool, len(rc.OutputIDs))
	for _, id := range rc.OutputIDs {
		outputs[id] = values[id]
	}
	return outputs, nil
}

func dedup(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
