package commits

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/commitfiles/internal/dependencies"
	"github.com/temirov/commitfiles/internal/shared"
	"github.com/temirov/commitfiles/internal/utils"
)

const (
	commandUseNameConstant          = "commit-files"
	commandShortDescriptionConstant = "Stage all changes and commit every changed file on its own"
	commandLongDescriptionConstant  = "commit-files stages every pending change in the repository one directory above the current directory, then creates one commit per changed file with the message \"Update <file name>\". Files that fail to commit are reported and skipped; the run always finishes with the number of files committed."
	commandExampleConstant          = "cd backend && commit-files"
	repositoryRootPathConstant      = ".."
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the commit-files command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	FileSystem                   shared.FileSystem
	HumanReadableLoggingProvider func() bool
}

// Build constructs the commit-files command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseNameConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(ServiceDependencies{
		GitExecutor: gitExecutor,
		FileSystem:  dependencies.ResolveFileSystem(builder.FileSystem),
		Logger:      logger,
	})
	if serviceError != nil {
		return serviceError
	}

	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}

	_, runError := service.Run(executionContext, Options{
		RepositoryRoot: repositoryRootPathConstant,
		Output:         utils.NewFlushingWriter(command.OutOrStdout()),
	})
	return runError
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
