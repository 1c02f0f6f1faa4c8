// Package tree maintains the materialized ancestor path of every node and
// answers hierarchy queries against it.
//
// The path side: Recompute rebuilds one node's ancestor chain from its
// parent and reports whether the chain changed; Save runs the full
// mutate-then-commit lifecycle (recompute, commit, cascade); Cascade pushes
// a changed chain down through the node's descendants one generation at a
// time; ForceCascade rebuilds an entire subtree unconditionally, for
// repairing paths corrupted outside the engine (for example after a bulk
// import).
//
// The query side exploits the materialized chain so that every lookup is at
// most one filtered read of the store — no recursive traversal. Ancestors is
// returned in root-first chain order; all other multi-node results carry no
// ordering guarantee.
//
// All functions take the Store explicitly. The package holds no state across
// calls beyond the nodes passed through it.
package tree
