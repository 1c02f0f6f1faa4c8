// Package arbor holds module-level metadata shared by the CLI and build
// tooling.
package arbor

// Version is the Arbor release version.
const Version = "0.3.0"
