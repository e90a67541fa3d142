package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// CircuitMemory is a fixed-capacity Memory backed by a slice, with a
// bitset tracking which slots hold a value.
type CircuitMemory[T any] struct {
	values []T
	set    *bitset.BitSet
}

// NewCircuitMemory returns a memory with n empty slots.
func NewCircuitMemory[T any](n int) *CircuitMemory[T] {
	return &CircuitMemory[T]{
		values: make([]T, n),
		set:    bitset.New(uint(n)),
	}
}

func (m *CircuitMemory[T]) Read(slot int) (T, error) {
	var zero T
	if slot < 0 || slot >= len(m.values) {
		return zero, fmt.Errorf("%w: read slot %d, capacity %d", ErrSlotOutOfBounds, slot, len(m.values))
	}
	if !m.set.Test(uint(slot)) {
		return zero, fmt.Errorf("%w: slot %d", ErrUninitialized, slot)
	}
	return m.values[slot], nil
}

func (m *CircuitMemory[T]) Write(slot int, value T) error {
	if slot < 0 || slot >= len(m.values) {
		return fmt.Errorf("%w: write slot %d, capacity %d", ErrSlotOutOfBounds, slot, len(m.values))
	}
	m.values[slot] = value
	m.set.Set(uint(slot))
	return nil
}

// Clear unsets every slot so the memory can back a fresh run.
func (m *CircuitMemory[T]) Clear() {
	clear(m.values)
	m.set.ClearAll()
}

// Len returns the slot capacity.
func (m *CircuitMemory[T]) Len() int { return len(m.values) }
