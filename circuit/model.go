// Package circuit is the representation and execution core: it defines
// the memory, component and executable contracts, the incremental
// validating Builder that compacts sparse node identifiers into dense
// slots, the immutable Circuit (itself usable as a component of a
// larger circuit), and the Executor that seeds, runs and harvests a
// circuit.
package circuit

// Memory is an indexed read/write store over a value type.
type Memory[T any] interface {
	// Read returns the value at slot, ErrUninitialized if the slot has
	// never been written, or ErrSlotOutOfBounds.
	Read(slot int) (T, error)
	// Write stores value at slot, unconditionally overwriting any
	// previous value. Single-assignment discipline is enforced by the
	// Builder, not here.
	Write(slot int, value T) error
}

// Component is the read-only wiring view of one unit of computation:
// the ordered node identifiers it reads and the ordered node
// identifiers it writes.
//
// The setters exist for the Builder's one-time translation from
// caller-chosen node identifiers to dense memory slots; user code
// should not call them.
type Component interface {
	Inputs() []int
	Outputs() []int
	SetInputs([]int)
	SetOutputs([]int)
}

// Executable is a component that can run against a memory.
//
// Execute must read only the slots in Inputs and write only the slots
// in Outputs. The framework does not police this at run time; a
// component that writes elsewhere corrupts the run silently.
type Executable[T any] interface {
	Component
	Execute(mem Memory[T]) error
}
