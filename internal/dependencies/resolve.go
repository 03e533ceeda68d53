// Package dependencies resolves default collaborators for commands when tests do not inject them.
package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/commitfiles/internal/execshell"
	"github.com/temirov/commitfiles/internal/filesystem"
	"github.com/temirov/commitfiles/internal/shared"
	"github.com/temirov/commitfiles/internal/ui"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing shared.FileSystem) shared.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
// Human-readable logging routes command events through the console event logger.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	var executorOptions []execshell.ShellExecutorOption
	if humanReadableLogging {
		executorOptions = append(executorOptions, execshell.WithCommandEventObserver(ui.NewConsoleCommandEventLogger(logger)))
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), executorOptions...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}
