package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wiresim/wiresim/bristol"
)

var rootCmd = &cobra.Command{
	Use:           "wiresim",
	Short:         "simulate Bristol-format arithmetic circuits",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	fCircuitDir    string
	fCircuit       string
	fCircuitInfo   string
	fCircuitInputs string
)

func addCircuitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fCircuitDir, "circuit-dir", "", "directory containing circuit.txt, circuit_info.json, circuit_inputs.json")
	cmd.Flags().StringVar(&fCircuit, "circuit", "", "path to circuit.txt")
	cmd.Flags().StringVar(&fCircuitInfo, "circuit-info", "", "path to circuit_info.json")
}

// resolvePath returns the explicit flag value if given, otherwise the
// conventional file name under --circuit-dir.
func resolvePath(explicit, name string) (string, error) {
	if explicit != "" {
		return filepath.Clean(explicit), nil
	}
	if fCircuitDir != "" {
		return filepath.Join(fCircuitDir, name), nil
	}
	return "", errors.New("required: either --circuit-dir or --circuit")
}

// loadCircuit reads the info JSON and the Bristol text into a parsed
// circuit.
func loadCircuit() (*bristol.Circuit, error) {
	infoPath, err := resolvePath(fCircuitInfo, "circuit_info.json")
	if err != nil {
		return nil, err
	}
	circuitPath, err := resolvePath(fCircuit, "circuit.txt")
	if err != nil {
		return nil, err
	}

	var info bristol.Info
	if err := loadJSON(infoPath, &info); err != nil {
		return nil, err
	}

	f, err := os.Open(circuitPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bc, err := bristol.ReadCircuit(info, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", circuitPath, err)
	}
	return bc, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
