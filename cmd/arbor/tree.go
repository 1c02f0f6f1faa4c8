// Tree command for the arbor CLI.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/tree"
	"github.com/mesh-intelligence/arbor/pkg/types"
)

var treeCmd = &cobra.Command{
	Use:   "tree [node-id]",
	Short: "Render a subtree as an indented outline",
	Long: `Tree renders the subtree under the given node. Without an argument
it renders every tree in the store. The whole subtree is fetched with a
single query on the materialized ancestor path and assembled in memory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tree:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		var tops []*types.Node
		var all []*types.Node

		if len(args) == 1 {
			n := mustGet(store, args[0])
			all, err = tree.DescendantsAndSelf(store, n)
			if err != nil {
				fmt.Fprintln(os.Stderr, "tree:", err)
				os.Exit(exitSysError)
			}
			tops = []*types.Node{n}
		} else {
			all, err = store.Find(nil)
			if err != nil {
				fmt.Fprintln(os.Stderr, "tree:", err)
				os.Exit(exitSysError)
			}
			for _, n := range all {
				if n.IsRoot() {
					tops = append(tops, n)
				}
			}
		}

		if flagJSON {
			printJSON(all)
			return nil
		}

		children := childIndex(all)
		for _, top := range tops {
			renderSubtree(top, children, 0)
		}
		return nil
	},
}

// childIndex groups fetched nodes by ParentID so rendering never goes back
// to the store. Children are sorted by name for stable output; the store
// itself guarantees no order.
func childIndex(nodes []*types.Node) map[string][]*types.Node {
	index := make(map[string][]*types.Node, len(nodes))
	for _, n := range nodes {
		index[n.ParentID] = append(index[n.ParentID], n)
	}
	for _, siblings := range index {
		sort.Slice(siblings, func(i, j int) bool {
			if siblings[i].Name != siblings[j].Name {
				return siblings[i].Name < siblings[j].Name
			}
			return siblings[i].NodeID < siblings[j].NodeID
		})
	}
	return index
}

func renderSubtree(n *types.Node, children map[string][]*types.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Name != "" {
		fmt.Printf("%s%s  (%s)\n", indent, n.Name, n.NodeID)
	} else {
		fmt.Printf("%s%s\n", indent, n.NodeID)
	}
	for _, child := range children[n.NodeID] {
		renderSubtree(child, children, depth+1)
	}
}
