// List command for the arbor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
)

var listCmd = &cobra.Command{
	Use:   "list [node-id]",
	Short: "List children of a node, or all roots",
	Long: `List shows the direct children of the given node. Without an
argument it lists the root nodes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		parentID := ""
		if len(args) == 1 {
			// Validate the id before listing so a typo reads as an error,
			// not an empty tree.
			parentID = mustGet(store, args[0]).NodeID
		}

		children, err := tree.ChildrenOf(store, parentID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		printNodes(children)
		return nil
	},
}
