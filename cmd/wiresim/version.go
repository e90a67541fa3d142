package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiresim/wiresim"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the wiresim version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(wiresim.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
