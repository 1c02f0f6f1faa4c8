// Repair command for the arbor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
)

var repairCmd = &cobra.Command{
	Use:   "repair <node-id>",
	Short: "Rebuild ancestor paths for an entire subtree",
	Long: `Repair recomputes and rewrites the ancestor path of every node below
the given node, whether or not it looks stale. Use it after a bulk import,
an interrupted move, or any edit that bypassed arbor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "repair:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		n := mustGet(store, args[0])

		if err := tree.ForceCascade(store, n); err != nil {
			fmt.Fprintln(os.Stderr, "repair:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("repaired subtree under", n.NodeID)
		return nil
	},
}
