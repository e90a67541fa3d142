package circuit

// Circuit is an immutable, validated component list plus its boundary
// contract: the declared input and output node identifiers and the
// total slot count of its private address space.
//
// A circuit satisfies Executable, so a fully-built circuit can be added
// to another Builder like any other component and composed
// hierarchically to any depth. Its internal slot numbering is fully
// encapsulated: an enclosing circuit only ever touches it through the
// boundary copy-in/copy-out of Execute.
type Circuit[T any] struct {
	components []Executable[T]

	// Original boundary node identifiers, in declaration order, and
	// the private slots they were compacted to. These never change
	// after Build; the Executor keys its input and output maps by
	// them.
	inputIDs    []int
	inputSlots  []int
	outputIDs   []int
	outputSlots []int

	slotCount int

	// Boundary identifiers as seen from outside. Initially the
	// original node identifiers; when the circuit is embedded in an
	// enclosing Builder they are rewritten to slots of the enclosing
	// address space, like any component's wiring.
	boundIn  []int
	boundOut []int
}

// Inputs returns the circuit's boundary input identifiers as seen by an
// enclosing builder.
func (c *Circuit[T]) Inputs() []int { return c.boundIn }

// Outputs returns the circuit's boundary output identifiers as seen by
// an enclosing builder.
func (c *Circuit[T]) Outputs() []int { return c.boundOut }

func (c *Circuit[T]) SetInputs(ids []int) { c.boundIn = ids }

func (c *Circuit[T]) SetOutputs(ids []int) { c.boundOut = ids }

// Execute runs the circuit as a component of an enclosing circuit:
// boundary inputs are copied from mem into a fresh private memory, the
// internal components run in stored order, and boundary outputs are
// copied back out. The private memory is allocated per invocation;
// nothing is memoized across calls.
func (c *Circuit[T]) Execute(mem Memory[T]) error {
	priv := NewCircuitMemory[T](c.slotCount)
	for i, outer := range c.boundIn {
		v, err := mem.Read(outer)
		if err != nil {
			return err
		}
		if err := priv.Write(c.inputSlots[i], v); err != nil {
			return err
		}
	}
	if err := c.run(priv); err != nil {
		return err
	}
	for i, outer := range c.boundOut {
		v, err := priv.Read(c.outputSlots[i])
		if err != nil {
			return err
		}
		if err := mem.Write(outer, v); err != nil {
			return err
		}
	}
	return nil
}

// run executes every component against mem in stored order, wrapping
// the first failure with its position.
func (c *Circuit[T]) run(mem Memory[T]) error {
	for i, comp := range c.components {
		if err := comp.Execute(mem); err != nil {
			return &ExecutionError{Index: i, Err: err}
		}
	}
	return nil
}

// Clone returns a circuit sharing this circuit's immutable internals
// but with fresh boundary views. Embedding a circuit rewrites its
// boundary views in place, so embedding the same circuit value into a
// second enclosing builder requires a clone. Plain execution never
// does.
func (c *Circuit[T]) Clone() *Circuit[T] {
	cc := *c
	cc.boundIn = append([]int(nil), c.inputIDs...)
	cc.boundOut = append([]int(nil), c.outputIDs...)
	return &cc
}

// Size returns the number of components.
func (c *Circuit[T]) Size() int { return len(c.components) }

// SlotCount returns the size of the circuit's private address space.
func (c *Circuit[T]) SlotCount() int { return c.slotCount }
