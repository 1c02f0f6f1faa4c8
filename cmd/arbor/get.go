// Get command for the arbor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
)

var getCmd = &cobra.Command{
	Use:   "get <node-id>",
	Short: "Show a single node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		n := mustGet(store, args[0])

		if flagJSON {
			printJSON(n)
			return nil
		}

		fmt.Println(formatNode(n))
		leaf, err := tree.IsLeaf(store, n)
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("  leaf:     ", leaf)
		fmt.Println("  ancestors:", n.Depth())
		if len(n.Payload) > 0 {
			fmt.Println("  payload:")
			for k, v := range n.Payload {
				fmt.Printf("    %s: %v\n", k, v)
			}
		}
		return nil
	},
}
