// Package test provides helpers for testing circuits: assertion
// wrappers around runs and a seeded random circuit generator with a
// reference evaluator.
package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wiresim/wiresim/circuit"
)

// Assert wraps require.Assertions with circuit-shaped helpers over a
// fixed value type.
type Assert[T comparable] struct {
	*require.Assertions
	t *testing.T
}

func NewAssert[T comparable](t *testing.T) *Assert[T] {
	return &Assert[T]{Assertions: require.New(t), t: t}
}

// RunSucceeds executes c with inputs and requires exactly the expected
// output map.
func (a *Assert[T]) RunSucceeds(c *circuit.Circuit[T], inputs, want map[int]T) {
	a.t.Helper()
	got, err := circuit.NewExecutor(c).Run(inputs)
	a.NoError(err)
	a.Equal(want, got)
}

// RunFails executes c with inputs and requires a failure matching
// target, with no output map.
func (a *Assert[T]) RunFails(c *circuit.Circuit[T], inputs map[int]T, target error) {
	a.t.Helper()
	got, err := circuit.NewExecutor(c).Run(inputs)
	a.ErrorIs(err, target)
	a.Nil(got)
}

// BuildFails requires that err matches the expected build error.
func (a *Assert[T]) BuildFails(err, target error) {
	a.t.Helper()
	a.ErrorIs(err, target)
}
