// Version command for the arbor CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/arbor"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the arbor version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("arbor", arbor.Version)
	},
}
