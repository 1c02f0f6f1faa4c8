// Create command for the arbor CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
	"github.com/mesh-intelligence/arbor/pkg/types"
)

var (
	createName   string
	createParent string
)

var createCmd = &cobra.Command{
	Use:   "create [key=value...]",
	Short: "Create a new node, optionally under a parent",
	Long: `Create stores a new node. With --parent the node is placed under the
given node and its ancestor path is computed before the commit; without it
the node becomes a new root. Extra key=value arguments become the node's
payload (values that parse as JSON are stored structured).

Example:
  arbor create --name "Projects"
  arbor create --name "Q3 plan" --parent 0189f. status=draft priority=2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if createName == "" {
			fmt.Fprintln(os.Stderr, "create: --name is required")
			os.Exit(exitUserError)
		}

		payload, err := parsePayloadArgs(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitUserError)
		}

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		n := &types.Node{
			ParentID: createParent,
			Name:     createName,
			Payload:  payload,
		}

		id, err := tree.Save(store, n)
		if errors.Is(err, tree.ErrDanglingParent) {
			fmt.Fprintf(os.Stderr, "create: parent %s does not exist\n", createParent)
			os.Exit(exitUserError)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(n)
		} else {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "node name (required)")
	createCmd.Flags().StringVar(&createParent, "parent", "", "parent node id (omit for a root)")
}
