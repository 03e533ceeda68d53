package commits_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/commitfiles/internal/commits"
	"github.com/temirov/commitfiles/internal/execshell"
	"github.com/temirov/commitfiles/internal/filesystem"
)

const (
	gitExecutableNameConstant = "git"
	seedFileNameConstant      = "seed.txt"
)

func runGit(t *testing.T, repositoryPath string, arguments ...string) string {
	t.Helper()
	command := exec.Command(gitExecutableNameConstant, arguments...)
	command.Dir = repositoryPath
	combinedOutput, runError := command.CombinedOutput()
	require.NoError(t, runError, string(combinedOutput))
	return string(combinedOutput)
}

func writeRepositoryFile(t *testing.T, repositoryPath string, relativePath string, content string) {
	t.Helper()
	absolutePath := filepath.Join(repositoryPath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(t, os.WriteFile(absolutePath, []byte(content), 0o600))
}

func initializeRepository(t *testing.T) string {
	t.Helper()
	if _, lookupError := exec.LookPath(gitExecutableNameConstant); lookupError != nil {
		t.Skip("git executable not available")
	}

	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Commit Files")
	t.Setenv("GIT_AUTHOR_EMAIL", "commit-files@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Commit Files")
	t.Setenv("GIT_COMMITTER_EMAIL", "commit-files@example.com")

	repositoryPath := t.TempDir()
	runGit(t, repositoryPath, "init", "--quiet")
	writeRepositoryFile(t, repositoryPath, seedFileNameConstant, "seed\n")
	runGit(t, repositoryPath, "add", seedFileNameConstant)
	runGit(t, repositoryPath, "commit", "--quiet", "-m", "Initial commit")
	return repositoryPath
}

func TestRunCreatesOneCommitPerFile(t *testing.T) {
	repositoryPath := initializeRepository(t)
	writeRepositoryFile(t, repositoryPath, "backend/app.py", "print('hello')\n")
	writeRepositoryFile(t, repositoryPath, seedFileNameConstant, "seed updated\n")

	shellExecutor, executorError := execshell.NewShellExecutor(zap.NewNop(), execshell.NewOSCommandRunner())
	require.NoError(t, executorError)
	service, serviceError := commits.NewService(commits.ServiceDependencies{GitExecutor: shellExecutor, FileSystem: filesystem.OSFileSystem{}})
	require.NoError(t, serviceError)

	output := &bytes.Buffer{}
	summary, runError := service.Run(context.Background(), commits.Options{RepositoryRoot: repositoryPath, Output: output})
	require.NoError(t, runError)

	require.Equal(t, commits.Summary{FilesFound: 2, FilesAttempted: 2, FilesCommitted: 2}, summary)
	require.Contains(t, output.String(), "Committing backend/app.py...")
	require.Contains(t, output.String(), "Committing "+seedFileNameConstant+"...")
	require.Contains(t, output.String(), "Done. Committed 2 files.")

	subjects := strings.Split(strings.TrimSpace(runGit(t, repositoryPath, "log", "--format=%s")), "\n")
	require.ElementsMatch(t, []string{"Update app.py", "Update " + seedFileNameConstant, "Initial commit"}, subjects)

	for _, revision := range []string{"HEAD", "HEAD~1"} {
		changedFiles := strings.TrimSpace(runGit(t, repositoryPath, "show", "--format=", "--name-only", revision))
		require.NotEmpty(t, changedFiles, revision)
		require.NotContains(t, changedFiles, "\n", revision)
	}

	require.Empty(t, strings.TrimSpace(runGit(t, repositoryPath, "status", "--porcelain")))
}

func TestRunOnCleanRepositoryCommitsNothing(t *testing.T) {
	repositoryPath := initializeRepository(t)

	shellExecutor, executorError := execshell.NewShellExecutor(zap.NewNop(), execshell.NewOSCommandRunner())
	require.NoError(t, executorError)
	service, serviceError := commits.NewService(commits.ServiceDependencies{GitExecutor: shellExecutor, FileSystem: filesystem.OSFileSystem{}})
	require.NoError(t, serviceError)

	output := &bytes.Buffer{}
	summary, runError := service.Run(context.Background(), commits.Options{RepositoryRoot: repositoryPath, Output: output})
	require.NoError(t, runError)
	require.Zero(t, summary.FilesFound)
	require.Equal(t, "Staging all files...\nGetting file list...\nFound 0 files to commit.\nDone. Committed 0 files.\n", output.String())
}
