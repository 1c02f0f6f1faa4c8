// Shared helpers for arbor CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/arbor/internal/sqlite"
	"github.com/mesh-intelligence/arbor/pkg/types"
)

// attachStore resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// mustGet fetches a node by id, exiting with a user error when the id is
// missing or unknown.
func mustGet(store *sqlite.Backend, id string) *types.Node {
	n, err := store.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "node %s: %v\n", id, err)
		os.Exit(exitUserError)
	}
	return n
}

// printNode writes one node to stdout, as JSON when --json is set and as a
// short human line otherwise.
func printNode(n *types.Node) {
	if flagJSON {
		printJSON(n)
		return
	}
	fmt.Println(formatNode(n))
}

// printNodes writes a node list to stdout.
func printNodes(nodes []*types.Node) {
	if flagJSON {
		printJSON(nodes)
		return
	}
	for _, n := range nodes {
		fmt.Println(formatNode(n))
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode output:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// formatNode renders a node as "id  name  (depth N)" with a parent marker
// for non-roots.
func formatNode(n *types.Node) string {
	var b strings.Builder
	b.WriteString(n.NodeID)
	if n.Name != "" {
		b.WriteString("  ")
		b.WriteString(n.Name)
	}
	if n.IsRoot() {
		b.WriteString("  [root]")
	} else {
		fmt.Fprintf(&b, "  (depth %d, parent %s)", n.Depth(), n.ParentID)
	}
	return b.String()
}

// parsePayloadArgs converts key=value arguments into a payload map. Values
// that parse as JSON are stored structured; everything else stays a string.
func parsePayloadArgs(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	payload := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid payload entry %q (expected key=value)", arg)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		payload[key] = parsed
	}
	return payload, nil
}
