package commits

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/commitfiles/internal/execshell"
	"github.com/temirov/commitfiles/internal/shared"
)

const (
	gitExecutorMissingMessageConstant     = "git executor not configured"
	fileSystemMissingMessageConstant      = "file system not configured"
	repositoryRootRequiredMessageConstant = "repository root must be provided"

	commitMessageTemplateConstant    = "Update %s"
	stagingMessageConstant           = "Staging all files..."
	stageFailureTemplateConstant     = "Error running command: %s"
	listingMessageConstant           = "Getting file list..."
	foundFilesTemplateConstant       = "Found %d files to commit."
	committingTemplateConstant       = "Committing %s..."
	commitFailureTemplateConstant    = "Failed to commit %s"
	summaryTemplateConstant          = "Done. Committed %d files."
	gitAddSubcommandConstant         = "add"
	gitAddEverythingPathspecConstant = "."
	gitStatusSubcommandConstant      = "status"
	gitPorcelainFlagConstant         = "--porcelain"
	gitCommitSubcommandConstant      = "commit"
	gitMessageFlagConstant           = "-m"
	gitPathspecSeparatorConstant     = "--"

	logMessageStageFailedConstant      = "staging failed; continuing"
	logMessageStatusFailedConstant     = "status query failed; treating listing as empty"
	logMessageChangesListedConstant    = "working tree changes listed"
	logMessageDirectorySkippedConstant = "skipping directory entry"
	logMessageCommitFailedConstant     = "commit failed; continuing"
	logMessageCommitCreatedConstant    = "commit created"
	logMessageRunCompletedConstant     = "per-file commit run completed"
	logFieldRepositoryRootConstant     = "repository_root"
	logFieldPathConstant               = "path"
	logFieldStatusCodeConstant         = "status_code"
	logFieldCommitMessageConstant      = "message"
	logFieldFilesFoundConstant         = "files_found"
	logFieldFilesAttemptedConstant     = "files_attempted"
	logFieldFilesCommittedConstant     = "files_committed"
	logFieldFailureCountConstant       = "failures"
	logFieldDetailsConstant            = "details"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrFileSystemNotConfigured indicates the file system dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrRepositoryRootRequired indicates the repository root option was empty.
var ErrRepositoryRootRequired = errors.New(repositoryRootRequiredMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor shared.GitExecutor
	FileSystem  shared.FileSystem
	Logger      *zap.Logger
}

// Options configure a single run.
type Options struct {
	RepositoryRoot string
	Output         io.Writer
}

// CommitFailure records a file whose commit was rejected by git.
type CommitFailure struct {
	Path    string
	Details string
}

// Summary captures the outcome of a run.
type Summary struct {
	FilesFound     int
	FilesAttempted int
	FilesCommitted int
	Failures       []CommitFailure
}

// Service stages and commits changed files one at a time.
type Service struct {
	executor   shared.GitExecutor
	fileSystem shared.FileSystem
	logger     *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{executor: dependencies.GitExecutor, fileSystem: dependencies.FileSystem, logger: logger}, nil
}

// CommitMessage derives the commit message for a repository-relative path.
func CommitMessage(path string) string {
	return fmt.Sprintf(commitMessageTemplateConstant, filepath.Base(path))
}

// Run stages everything, lists the changes, commits each file, and prints the final count.
// Staging and per-file commit failures are reported to the output and never returned.
func (service *Service) Run(executionContext context.Context, options Options) (Summary, error) {
	repositoryRoot := strings.TrimSpace(options.RepositoryRoot)
	if len(repositoryRoot) == 0 {
		return Summary{}, ErrRepositoryRootRequired
	}

	output := options.Output
	if output == nil {
		output = io.Discard
	}

	_ = service.StageAll(executionContext, repositoryRoot, output)
	records := service.ListChanges(executionContext, repositoryRoot, output)
	summary := service.CommitEach(executionContext, repositoryRoot, records, output)
	service.Summarize(output, summary)

	return summary, nil
}

// StageAll runs `git add .` in the repository root. A failure is printed with the
// tool's error output and returned for inspection; callers continue regardless.
func (service *Service) StageAll(executionContext context.Context, repositoryRoot string, output io.Writer) error {
	fmt.Fprintln(output, stagingMessageConstant)

	stageDetails := execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, gitAddEverythingPathspecConstant},
		WorkingDirectory: repositoryRoot,
	}
	_, stageError := service.executor.ExecuteGit(executionContext, stageDetails)
	if stageError == nil {
		return nil
	}

	commandLine := execshell.ShellCommand{Name: execshell.CommandGit, Details: stageDetails}.CommandLine()
	fmt.Fprintf(output, stageFailureTemplateConstant+"\n", commandLine)
	failureDetails := describeFailure(stageError)
	writeDetails(output, failureDetails)

	service.logger.Warn(logMessageStageFailedConstant, zap.String(logFieldRepositoryRootConstant, repositoryRoot), zap.String(logFieldDetailsConstant, failureDetails))
	return stageError
}

// ListChanges queries the porcelain status of the repository root and parses it.
// A failed query yields an empty listing.
func (service *Service) ListChanges(executionContext context.Context, repositoryRoot string, output io.Writer) []ChangeRecord {
	fmt.Fprintln(output, listingMessageConstant)

	statusResult, statusError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant, gitPorcelainFlagConstant},
		WorkingDirectory: repositoryRoot,
	})
	if statusError != nil {
		service.logger.Warn(logMessageStatusFailedConstant, zap.String(logFieldRepositoryRootConstant, repositoryRoot), zap.String(logFieldDetailsConstant, describeFailure(statusError)))
		statusResult = execshell.ExecutionResult{}
	}

	records := ParseStatusListing(statusResult.StandardOutput)
	fmt.Fprintf(output, foundFilesTemplateConstant+"\n", len(records))
	service.logger.Info(logMessageChangesListedConstant, zap.Int(logFieldFilesFoundConstant, len(records)))

	return records
}

// CommitEach commits every non-directory record separately, in order.
func (service *Service) CommitEach(executionContext context.Context, repositoryRoot string, records []ChangeRecord, output io.Writer) Summary {
	summary := Summary{FilesFound: len(records)}
	resolvedRoot := service.resolveRepositoryRoot(repositoryRoot)

	for _, record := range records {
		if service.isDirectory(filepath.Join(repositoryRoot, record.Path)) {
			service.logger.Debug(logMessageDirectorySkippedConstant, zap.String(logFieldPathConstant, record.Path))
			continue
		}

		fmt.Fprintf(output, committingTemplateConstant+"\n", record.Path)
		summary.FilesAttempted++

		commitMessage := CommitMessage(record.Path)
		_, commitError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{gitCommitSubcommandConstant, gitMessageFlagConstant, commitMessage, gitPathspecSeparatorConstant, record.Path},
			WorkingDirectory: repositoryRoot,
		})
		if commitError != nil {
			failureDetails := describeFailure(commitError)
			fmt.Fprintf(output, commitFailureTemplateConstant+"\n", record.Path)
			writeDetails(output, failureDetails)
			summary.Failures = append(summary.Failures, CommitFailure{Path: record.Path, Details: failureDetails})
			service.logger.Warn(logMessageCommitFailedConstant, zap.String(logFieldPathConstant, record.Path), zap.String(logFieldDetailsConstant, failureDetails))
			continue
		}

		summary.FilesCommitted++
		service.logger.Info(
			logMessageCommitCreatedConstant,
			zap.String(logFieldRepositoryRootConstant, resolvedRoot),
			zap.String(logFieldPathConstant, record.Path),
			zap.String(logFieldStatusCodeConstant, record.StatusCode),
			zap.String(logFieldCommitMessageConstant, commitMessage),
		)
	}

	return summary
}

// Summarize prints the count of committed files.
func (service *Service) Summarize(output io.Writer, summary Summary) {
	fmt.Fprintf(output, summaryTemplateConstant+"\n", summary.FilesCommitted)
	service.logger.Info(
		logMessageRunCompletedConstant,
		zap.Int(logFieldFilesFoundConstant, summary.FilesFound),
		zap.Int(logFieldFilesAttemptedConstant, summary.FilesAttempted),
		zap.Int(logFieldFilesCommittedConstant, summary.FilesCommitted),
		zap.Int(logFieldFailureCountConstant, len(summary.Failures)),
	)
}

// resolveRepositoryRoot reports the absolute repository root, or the root as given when it cannot be resolved.
func (service *Service) resolveRepositoryRoot(repositoryRoot string) string {
	absoluteRoot, absError := service.fileSystem.Abs(repositoryRoot)
	if absError != nil {
		return repositoryRoot
	}
	return absoluteRoot
}

func (service *Service) isDirectory(path string) bool {
	fileInfo, statError := service.fileSystem.Stat(path)
	if statError != nil {
		return false
	}
	return fileInfo.IsDir()
}

// describeFailure prefers the tool's error stream over the wrapped error text.
// git commit reports some refusals (such as "nothing to commit") on standard output.
func describeFailure(failure error) string {
	var commandFailure execshell.CommandFailedError
	if errors.As(failure, &commandFailure) {
		standardError := strings.TrimSpace(commandFailure.Result.StandardError)
		if len(standardError) > 0 {
			return standardError
		}
		return strings.TrimSpace(commandFailure.Result.StandardOutput)
	}
	var executionFailure execshell.CommandExecutionError
	if errors.As(failure, &executionFailure) && executionFailure.Cause != nil {
		return executionFailure.Cause.Error()
	}
	return failure.Error()
}

func writeDetails(output io.Writer, details string) {
	if len(details) == 0 {
		return
	}
	fmt.Fprintln(output, details)
}
