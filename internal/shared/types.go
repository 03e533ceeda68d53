// Package shared declares the collaborator interfaces consumed by commit-files services.
package shared

import (
	"context"
	"io/fs"

	"github.com/temirov/commitfiles/internal/execshell"
)

// GitExecutor exposes the subset of shell execution used by the committer.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// FileSystem exposes the file inspection required by the committer.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Abs(path string) (string, error)
}
