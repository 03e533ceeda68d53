package dependencies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/commitfiles/internal/execshell"
	"github.com/temirov/commitfiles/internal/filesystem"
)

type stubGitExecutor struct{}

func (stubGitExecutor) ExecuteGit(context.Context, execshell.CommandDetails) (execshell.ExecutionResult, error) {
	return execshell.ExecutionResult{}, nil
}

func TestResolveGitExecutorPrefersExisting(t *testing.T) {
	existing := stubGitExecutor{}
	resolved, resolveError := ResolveGitExecutor(existing, zap.NewNop(), false)
	require.NoError(t, resolveError)
	require.Equal(t, existing, resolved)
}

func TestResolveGitExecutorBuildsShellExecutor(t *testing.T) {
	for _, humanReadable := range []bool{false, true} {
		resolved, resolveError := ResolveGitExecutor(nil, zap.NewNop(), humanReadable)
		require.NoError(t, resolveError)
		require.IsType(t, &execshell.ShellExecutor{}, resolved)
	}
}

func TestResolveGitExecutorRequiresLogger(t *testing.T) {
	_, resolveError := ResolveGitExecutor(nil, nil, false)
	require.ErrorIs(t, resolveError, execshell.ErrLoggerNotConfigured)
}

func TestResolveFileSystemDefaultsToOperatingSystem(t *testing.T) {
	require.Equal(t, filesystem.OSFileSystem{}, ResolveFileSystem(nil))
}
