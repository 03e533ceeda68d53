// Package commits stages every pending change in a repository and records
// each changed file as its own commit.
//
// Service runs the linear pipeline (stage, list, commit each, summarize) over
// a GitExecutor so that every git call can be observed in tests, and
// CommandBuilder exposes it as the commit-files Cobra command.
package commits
