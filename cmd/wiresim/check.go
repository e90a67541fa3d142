package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiresim/wiresim/bristol"
	"github.com/wiresim/wiresim/number"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "parse and compile a circuit without running it",
	RunE:  cmdCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addCircuitFlags(checkCmd)
	checkCmd.Flags().StringVar(&fValueType, "value-type", "u32", "wire value type: u32 or bn254")
}

func cmdCheck(cmd *cobra.Command, args []string) error {
	bc, err := loadCircuit()
	if err != nil {
		return err
	}

	switch fValueType {
	case "u32":
		_, _, err = bristol.Compile[number.U32](bc)
	case "bn254":
		_, _, err = bristol.Compile[number.BN254](bc)
	default:
		return fmt.Errorf("unknown value type %q (want u32 or bn254)", fValueType)
	}
	if err != nil {
		return err
	}

	fmt.Printf("ok: %d gates, %d wires, %d inputs, %d outputs, %d constants\n",
		len(bc.Gates), bc.WireCount,
		len(bc.Info.InputNameToWireIndex),
		len(bc.Info.OutputNameToWireIndex),
		len(bc.Info.Constants))
	return nil
}
