// Package cli constructs the commit-files command-line interface, wiring the
// Cobra root command, the layered configuration loader, and structured
// logging around the per-file committer.
package cli
