package circuit

import (
	"errors"
	"fmt"
)

// Memory errors.
var (
	// ErrSlotOutOfBounds is returned when a slot index is outside the
	// capacity of the memory being accessed.
	ErrSlotOutOfBounds = errors.New("memory slot out of bounds")
	// ErrUninitialized is returned when reading a slot that has never
	// been written.
	ErrUninitialized = errors.New("memory slot uninitialized")
)

// Build errors. All of them are detected eagerly during Builder calls;
// Build can never produce an ill-formed circuit.
var (
	// ErrUndefinedInput is returned by AddComponent when a component
	// reads a node that no earlier input or component produces.
	ErrUndefinedInput = errors.New("undefined input node")
	// ErrDuplicateOutput is returned when a node would gain a second
	// producer. A node is produced at most once, either as a circuit
	// input or as exactly one component's output.
	ErrDuplicateOutput = errors.New("duplicate output node")
	// ErrUnresolvedOutput is returned by AddOutputs for a node that
	// nothing produces.
	ErrUnresolvedOutput = errors.New("unresolved output node")
	// ErrBuilderConsumed is returned by any Builder method called after
	// Build.
	ErrBuilderConsumed = errors.New("builder already consumed by Build")
)

// ErrMissingInput is returned by Executor.Run when a declared circuit
// input has no entry in the supplied input map.
var ErrMissingInput = errors.New("missing input value")

// ExecutionError wraps the failure of a single component with its
// position in the circuit's execution order.
type ExecutionError struct {
	// Index is the position of the failing component, counting from 0
	// in insertion order.
	Index int
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("component %d failed: %v", e.Index, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
