// Move command for the arbor CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
)

var moveParent string

var moveCmd = &cobra.Command{
	Use:   "move <node-id>",
	Short: "Reparent a node, updating its whole subtree",
	Long: `Move changes a node's parent. The node's ancestor path is recomputed
before the commit and the change cascades through every descendant, one
commit per node. With --parent "" the node becomes a root.

A failure partway through the cascade leaves already-updated descendants
correct and the rest stale; "arbor repair" on the moved node finishes the
job.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("parent") {
			fmt.Fprintln(os.Stderr, "move: --parent is required")
			os.Exit(exitUserError)
		}

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "move:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		n := mustGet(store, args[0])
		n.ParentID = moveParent

		_, err = tree.Save(store, n)
		switch {
		case errors.Is(err, tree.ErrDanglingParent):
			fmt.Fprintf(os.Stderr, "move: parent %s does not exist\n", moveParent)
			os.Exit(exitUserError)
		case errors.Is(err, tree.ErrCycleDetected):
			fmt.Fprintf(os.Stderr, "move: %v\n", err)
			os.Exit(exitUserError)
		case err != nil:
			fmt.Fprintln(os.Stderr, "move:", err)
			os.Exit(exitSysError)
		}

		printNode(n)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveParent, "parent", "", `new parent node id ("" makes the node a root)`)
}
