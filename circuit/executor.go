package circuit

import (
	"fmt"
)

// Executor owns one circuit and one scratch memory and runs the circuit
// against caller-supplied inputs.
//
// The scratch memory is reused across runs and fully cleared on entry,
// so no values leak between runs. The circuit itself is never mutated:
// a single built circuit may be shared read-only by any number of
// concurrent executors, each with its own scratch memory.
type Executor[T any] struct {
	circuit *Circuit[T]
	scratch *CircuitMemory[T]
}

// NewExecutor returns an executor for c with a scratch memory sized to
// c's slot count.
func NewExecutor[T any](c *Circuit[T]) *Executor[T] {
	return &Executor[T]{
		circuit: c,
		scratch: NewCircuitMemory[T](c.slotCount),
	}
}

// Run executes the circuit once. inputs maps each declared input node
// identifier to its value; the result maps each declared output node
// identifier to its computed value. A missing input or any component
// failure aborts the run with no partial result. For a fixed circuit
// and equal inputs, Run always returns equal outputs.
func (e *Executor[T]) Run(inputs map[int]T) (map[int]T, error) {
	c := e.circuit
	e.scratch.Clear()

	for i, id := range c.inputIDs {
		v, ok := inputs[id]
		if !ok {
			return nil, fmt.Errorf("%w: node %d", ErrMissingInput, id)
		}
		if err := e.scratch.Write(c.inputSlots[i], v); err != nil {
			return nil, err
		}
	}

	if err := c.run(e.scratch); err != nil {
		return nil, err
	}

	outputs := make(map[int]T, len(c.outputIDs))
	for i, id := range c.outputIDs {
		v, err := e.scratch.Read(c.outputSlots[i])
		if err != nil {
			return nil, err
		}
		outputs[id] = v
	}
	return outputs, nil
}
