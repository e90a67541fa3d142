package test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/wiresim/wiresim/circuit"
)

func defaultConfig(seed int64) *RandomCircuitConfig {
	return &RandomCircuitConfig{
		Seed:     seed,
		Inputs:   RandRange{L: 2, R: 6},
		Gates:    RandRange{L: 1, R: 20},
		SubNum:   RandRange{L: 0, R: 3},
		SubGates: RandRange{L: 1, R: 8},
	}
}

func TestRandomCircuitMatchesReference(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("executor output == reference trace output", prop.ForAll(
		func(seed int64) bool {
			rc, err := NewRandomCircuit(defaultConfig(seed))
			if err != nil {
				return false
			}
			exec := circuit.NewExecutor(rc.Circuit)
			for i := 0; i < 5; i++ {
				inputs := rc.RandomInputs()
				want, err := rc.Reference(inputs)
				if err != nil {
					return false
				}
				got, err := exec.Run(inputs)
				if err != nil {
					return false
				}
				if len(got) != len(want) {
					return false
				}
				for id, v := range want {
					if got[id] != v {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRandomCircuitDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)
	properties.Property("same circuit and inputs give same outputs", prop.ForAll(
		func(seed int64) bool {
			rc, err := NewRandomCircuit(defaultConfig(seed))
			if err != nil {
				return false
			}
			exec := circuit.NewExecutor(rc.Circuit)
			inputs := rc.RandomInputs()
			first, err := exec.Run(inputs)
			if err != nil {
				return false
			}
			for i := 0; i < 3; i++ {
				again, err := exec.Run(inputs)
				if err != nil {
					return false
				}
				for id, v := range first {
					if again[id] != v {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRandomCircuitEmbeddedMatchesStandalone(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)
	properties.Property("pass-through embedding preserves outputs", prop.ForAll(
		func(seed int64) bool {
			rc, err := NewRandomCircuit(defaultConfig(seed))
			if err != nil {
				return false
			}
			standalone := circuit.NewExecutor(rc.Circuit)

			b := circuit.NewBuilder[bool]()
			if err := b.AddInputs(rc.InputIDs...); err != nil {
				return false
			}
			if err := b.AddComponent(rc.Circuit.Clone()); err != nil {
				return false
			}
			if err := b.AddOutputs(rc.OutputIDs...); err != nil {
				return false
			}
			outer, err := b.Build()
			if err != nil {
				return false
			}
			nested := circuit.NewExecutor(outer)

			inputs := rc.RandomInputs()
			want, err := standalone.Run(inputs)
			if err != nil {
				return false
			}
			got, err := nested.Run(inputs)
			if err != nil {
				return false
			}
			for id, v := range want {
				if got[id] != v {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRandomCircuitIsSeedStable(t *testing.T) {
	a, err := NewRandomCircuit(defaultConfig(42))
	require.NoError(t, err)
	b, err := NewRandomCircuit(defaultConfig(42))
	require.NoError(t, err)

	require.Equal(t, a.InputIDs, b.InputIDs)
	require.Equal(t, a.OutputIDs, b.OutputIDs)
	require.Equal(t, a.Circuit.Size(), b.Circuit.Size())
	require.Equal(t, a.Circuit.SlotCount(), b.Circuit.SlotCount())
}
