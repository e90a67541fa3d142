package circuit

import (
	"fmt"
)

// Builder accumulates circuit inputs and components one at a time,
// validating as it goes, and produces an immutable Circuit.
//
// Node identifiers are caller-chosen non-negative integers; they may be
// sparse and need not start at zero. The builder compacts them into
// dense memory slots in encounter order. A node is "produced" when it
// is declared a circuit input or registered as a component output;
// every component may only read nodes produced before it was added, so
// the stored component order is a valid evaluation order by
// construction and no topological sort is ever needed.
//
// All state is held on the Builder value; a zero-configured builder
// comes from NewBuilder and is consumed exactly once by Build.
type Builder[T any] struct {
	// slotOf maps an external node identifier to its dense slot. An
	// identifier is mapped if and only if it has been produced.
	slotOf map[int]int

	components []Executable[T]

	inputIDs    []int
	inputSlots  []int
	outputIDs   []int
	outputSlots []int

	consumed bool
}

// BuilderOption configures a Builder at construction.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	capacityHint int
}

// WithCapacityHint presizes the builder's internal tables for a circuit
// expected to have around n nodes.
func WithCapacityHint(n int) BuilderOption {
	return func(c *builderConfig) { c.capacityHint = n }
}

// NewBuilder returns an empty builder.
func NewBuilder[T any](opts ...BuilderOption) *Builder[T] {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Builder[T]{slotOf: make(map[int]int, cfg.capacityHint)}
	if cfg.capacityHint > 0 {
		b.components = make([]Executable[T], 0, cfg.capacityHint)
	}
	return b
}

// produce assigns the next dense slot to id and marks it produced.
func (b *Builder[T]) produce(id int) int {
	slot := len(b.slotOf)
	b.slotOf[id] = slot
	return slot
}

// AddInputs declares circuit-level input nodes, in order. Each becomes
// produced and readable by components added later. Declaring a node
// that is already produced is an error: an input is a production, and
// productions are unique.
func (b *Builder[T]) AddInputs(ids ...int) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	for _, id := range ids {
		if _, ok := b.slotOf[id]; ok {
			return fmt.Errorf("%w: input node %d is already produced", ErrDuplicateOutput, id)
		}
		b.inputIDs = append(b.inputIDs, id)
		b.inputSlots = append(b.inputSlots, b.produce(id))
	}
	return nil
}

// AddComponent validates and appends one component. Every input node of
// the component must already be produced (ErrUndefinedInput otherwise);
// every output node must be fresh (ErrDuplicateOutput otherwise) and is
// assigned a new slot. On success the component's identifiers are
// rewritten in place to slots and the builder takes ownership of it.
func (b *Builder[T]) AddComponent(c Executable[T]) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	ins := c.Inputs()
	outs := c.Outputs()

	inSlots := make([]int, len(ins))
	for i, id := range ins {
		slot, ok := b.slotOf[id]
		if !ok {
			return fmt.Errorf("%w: component %d reads node %d", ErrUndefinedInput, len(b.components), id)
		}
		inSlots[i] = slot
	}

	for i, id := range outs {
		if _, ok := b.slotOf[id]; ok {
			return fmt.Errorf("%w: component %d writes node %d", ErrDuplicateOutput, len(b.components), id)
		}
		for _, prev := range outs[:i] {
			if prev == id {
				return fmt.Errorf("%w: component %d writes node %d twice", ErrDuplicateOutput, len(b.components), id)
			}
		}
	}
	outSlots := make([]int, len(outs))
	for i, id := range outs {
		outSlots[i] = b.produce(id)
	}

	c.SetInputs(inSlots)
	c.SetOutputs(outSlots)
	b.components = append(b.components, c)
	return nil
}

// AddOutputs declares the circuit's boundary output nodes, in order.
// Each must already be produced.
func (b *Builder[T]) AddOutputs(ids ...int) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	for _, id := range ids {
		slot, ok := b.slotOf[id]
		if !ok {
			return fmt.Errorf("%w: node %d", ErrUnresolvedOutput, id)
		}
		b.outputIDs = append(b.outputIDs, id)
		b.outputSlots = append(b.outputSlots, slot)
	}
	return nil
}

// Build consumes the builder and returns the immutable circuit. Any
// later call on the builder returns ErrBuilderConsumed.
func (b *Builder[T]) Build() (*Circuit[T], error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true
	return &Circuit[T]{
		components:  b.components,
		inputIDs:    b.inputIDs,
		inputSlots:  b.inputSlots,
		outputIDs:   b.outputIDs,
		outputSlots: b.outputSlots,
		slotCount:   len(b.slotOf),
		boundIn:     b.inputIDs,
		boundOut:    b.outputIDs,
	}, nil
}
