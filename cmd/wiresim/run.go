package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wiresim/wiresim"
	"github.com/wiresim/wiresim/bristol"
	"github.com/wiresim/wiresim/number"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "simulate a circuit over the supplied inputs",
	RunE:  cmdRun,
}

var (
	fOutput    string
	fValueType string
)

func init() {
	rootCmd.AddCommand(runCmd)
	addCircuitFlags(runCmd)
	runCmd.Flags().StringVar(&fCircuitInputs, "circuit-inputs", "", "path to circuit_inputs.json")
	runCmd.Flags().StringVarP(&fOutput, "output", "o", "", "path to output file (default: stdout)")
	runCmd.Flags().StringVar(&fValueType, "value-type", "u32", "wire value type: u32 or bn254")
}

func cmdRun(cmd *cobra.Command, args []string) error {
	bc, err := loadCircuit()
	if err != nil {
		return err
	}

	inputsPath, err := resolvePath(fCircuitInputs, "circuit_inputs.json")
	if err != nil {
		return err
	}
	var rawInputs map[string]string
	if err := loadJSON(inputsPath, &rawInputs); err != nil {
		return err
	}

	var outputs map[string]string
	switch fValueType {
	case "u32":
		outputs, err = simulateStrings[number.U32](bc, rawInputs)
	case "bn254":
		outputs, err = simulateStrings[number.BN254](bc, rawInputs)
	default:
		return fmt.Errorf("unknown value type %q (want u32 or bn254)", fValueType)
	}
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if fOutput != "" {
		return os.WriteFile(fOutput, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// simulateStrings runs the name-keyed simulation with inputs and
// outputs in the value type's string syntax.
func simulateStrings[N number.Number[N]](bc *bristol.Circuit, raw map[string]string) (map[string]string, error) {
	var parse N
	inputs := make(map[string]N, len(raw))
	for name, s := range raw {
		v, err := parse.SetString(s)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", name, err)
		}
		inputs[name] = v
	}

	outputs, err := wiresim.Simulate(bc, inputs)
	if err != nil {
		return nil, err
	}

	res := make(map[string]string, len(outputs))
	for name, v := range outputs {
		res[name] = v.String()
	}
	return res, nil
}
