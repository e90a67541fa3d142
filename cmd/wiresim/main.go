// Command wiresim loads a Bristol circuit description with its
// metadata, simulates it over JSON-supplied inputs, and writes the
// named outputs as JSON.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
