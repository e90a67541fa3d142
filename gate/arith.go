package gate

import (
	"github.com/wiresim/wiresim/circuit"
)

// Operand is the minimal contract Arith needs from its value type: the
// ability to apply a gate operation against a right-hand value. The
// number package provides implementations.
type Operand[N any] interface {
	Apply(op Op, rhs N) (N, error)
}

// Arith is a two-input, one-output arithmetic gate. It implements
// circuit.Executable[N] for any operand type N.
type Arith[N Operand[N]] struct {
	Op      Op
	inputs  []int
	outputs []int
}

// NewArith returns a gate computing lh op rh into out.
func NewArith[N Operand[N]](op Op, lh, rh, out int) *Arith[N] {
	return &Arith[N]{
		Op:      op,
		inputs:  []int{lh, rh},
		outputs: []int{out},
	}
}

func (g *Arith[N]) Inputs() []int        { return g.inputs }
func (g *Arith[N]) Outputs() []int       { return g.outputs }
func (g *Arith[N]) SetInputs(ids []int)  { g.inputs = ids }
func (g *Arith[N]) SetOutputs(ids []int) { g.outputs = ids }

func (g *Arith[N]) Execute(mem circuit.Memory[N]) error {
	lh, err := mem.Read(g.inputs[0])
	if err != nil {
		return err
	}
	rh, err := mem.Read(g.inputs[1])
	if err != nil {
		return err
	}
	v, err := lh.Apply(g.Op, rh)
	if err != nil {
		return err
	}
	return mem.Write(g.outputs[0], v)
}
