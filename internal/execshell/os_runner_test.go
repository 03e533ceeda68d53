package execshell_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/commitfiles/internal/execshell"
)

func requireGitExecutable(testInstance *testing.T) {
	testInstance.Helper()
	if _, lookupError := exec.LookPath(string(execshell.CommandGit)); lookupError != nil {
		testInstance.Skip("git executable not available")
	}
}

func TestOSCommandRunnerRunsInWorkingDirectory(testInstance *testing.T) {
	requireGitExecutable(testInstance)
	testInstance.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	testInstance.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	repositoryPath := testInstance.TempDir()
	runner := execshell.NewOSCommandRunner()

	initResult, initError := runner.Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"init", "--quiet"}, WorkingDirectory: repositoryPath},
	})
	require.NoError(testInstance, initError)
	require.Zero(testInstance, initResult.ExitCode)

	topLevelResult, topLevelError := runner.Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"rev-parse", "--show-toplevel"}, WorkingDirectory: repositoryPath},
	})
	require.NoError(testInstance, topLevelError)
	require.Zero(testInstance, topLevelResult.ExitCode)

	resolvedRepositoryPath, resolveError := filepath.EvalSymlinks(repositoryPath)
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, resolvedRepositoryPath, strings.TrimSpace(topLevelResult.StandardOutput))
}

func TestOSCommandRunnerReportsNonZeroExitWithoutError(testInstance *testing.T) {
	requireGitExecutable(testInstance)

	result, runError := execshell.NewOSCommandRunner().Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"commit-files-unknown-subcommand"}, WorkingDirectory: testInstance.TempDir()},
	})
	require.NoError(testInstance, runError)
	require.NotZero(testInstance, result.ExitCode)
	require.NotEmpty(testInstance, result.StandardError)
}

func TestOSCommandRunnerReturnsErrorForMissingExecutable(testInstance *testing.T) {
	_, runError := execshell.NewOSCommandRunner().Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandName("commit-files-missing-executable"),
		Details: execshell.CommandDetails{WorkingDirectory: testInstance.TempDir()},
	})
	require.Error(testInstance, runError)
}
