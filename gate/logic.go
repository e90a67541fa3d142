package gate

import (
	"fmt"

	"github.com/wiresim/wiresim/circuit"
)

// LogicOp is a boolean gate operation.
type LogicOp uint8

const (
	And LogicOp = iota
	Or
	LXor
	Nand
	Not
)

func (op LogicOp) String() string {
	switch op {
	case And:
		return "AND"
	case Or:
		return "OR"
	case LXor:
		return "XOR"
	case Nand:
		return "NAND"
	case Not:
		return "NOT"
	}
	return fmt.Sprintf("LogicOp(%d)", uint8(op))
}

// Logic is a boolean gate implementing circuit.Executable[bool]. Every
// operation takes two inputs and produces one output, except Not which
// takes one.
type Logic struct {
	Op      LogicOp
	inputs  []int
	outputs []int
}

// NewLogic returns a two-input gate computing op(a, b) into out.
func NewLogic(op LogicOp, a, b, out int) *Logic {
	return &Logic{Op: op, inputs: []int{a, b}, outputs: []int{out}}
}

// NewNot returns a NOT gate computing !a into out.
func NewNot(a, out int) *Logic {
	return &Logic{Op: Not, inputs: []int{a}, outputs: []int{out}}
}

func (g *Logic) Inputs() []int        { return g.inputs }
func (g *Logic) Outputs() []int       { return g.outputs }
func (g *Logic) SetInputs(ids []int)  { g.inputs = ids }
func (g *Logic) SetOutputs(ids []int) { g.outputs = ids }

func (g *Logic) Execute(mem circuit.Memory[bool]) error {
	a, err := mem.Read(g.inputs[0])
	if err != nil {
		return err
	}
	if g.Op == Not {
		return mem.Write(g.outputs[0], !a)
	}
	b, err := mem.Read(g.inputs[1])
	if err != nil {
		return err
	}
	var v bool
	switch g.Op {
	case And:
		v = a && b
	case Or:
		v = a || b
	case LXor:
		v = a != b
	case Nand:
		v = !(a && b)
	default:
		return fmt.Errorf("unknown logic operation %d", uint8(g.Op))
	}
	return mem.Write(g.outputs[0], v)
}
