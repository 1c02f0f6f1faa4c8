// Descendants command for the arbor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
)

var descendantsCmd = &cobra.Command{
	Use:   "descendants <node-id>",
	Short: "List every node in the subtree below a node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "descendants:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		n := mustGet(store, args[0])
		descendants, err := tree.Descendants(store, n)
		if err != nil {
			fmt.Fprintln(os.Stderr, "descendants:", err)
			os.Exit(exitSysError)
		}

		printNodes(descendants)
		return nil
	},
}
