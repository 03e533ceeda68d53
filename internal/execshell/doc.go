// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions commit-files uses
// to run git with explicit argument vectors in a testable manner.
package execshell
