// Ancestors command for the arbor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
)

var ancestorsCmd = &cobra.Command{
	Use:   "ancestors <node-id>",
	Short: "Show a node's ancestor chain, root first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "ancestors:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		n := mustGet(store, args[0])
		ancestors, err := tree.Ancestors(store, n)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ancestors:", err)
			os.Exit(exitSysError)
		}

		printNodes(ancestors)
		return nil
	},
}
