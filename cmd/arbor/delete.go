// Delete command for the arbor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <node-id>",
	Short: "Delete a node",
	Long: `Delete removes a single node. The store never touches descendants on
delete, so removing an inner node strands its subtree; the command refuses
non-leaf nodes unless --force is given. Stranded descendants keep working
once reparented with "arbor move" followed by "arbor repair".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		n := mustGet(store, args[0])

		if !deleteForce {
			leaf, err := tree.IsLeaf(store, n)
			if err != nil {
				fmt.Fprintln(os.Stderr, "delete:", err)
				os.Exit(exitSysError)
			}
			if !leaf {
				fmt.Fprintf(os.Stderr, "delete: node %s has children (use --force to strand them)\n", n.NodeID)
				os.Exit(exitUserError)
			}
		}

		if err := store.Delete(n.NodeID); err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("deleted", n.NodeID)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "delete even if the node has children")
}
