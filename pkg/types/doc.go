// Package types defines the Node entity, the Store interface the tree engine
// operates against, filter predicates, configuration, and the standard error
// values shared across the Arbor storage system.
package types
