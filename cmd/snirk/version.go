package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snirk-lang/protosnirk-sub001/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the snirk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("snirk", version.Full())
	},
}
