package execshell

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	logFieldCommandConstant                   = "command"
	logFieldArgumentsConstant                 = "arguments"
	logFieldWorkingDirectoryConstant          = "working_directory"
	logFieldExitCodeConstant                  = "exit_code"
	logFieldStandardErrorConstant             = "stderr"
)

// ErrLoggerNotConfigured indicates that a zap logger was not supplied.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates that a command runner was not supplied.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// ShellExecutorOption customizes a ShellExecutor during construction.
type ShellExecutorOption func(executor *ShellExecutor)

// WithCommandEventObserver routes lifecycle events to the observer instead of structured log entries.
func WithCommandEventObserver(observer CommandEventObserver) ShellExecutorOption {
	return func(executor *ShellExecutor) {
		executor.observer = observer
	}
}

// ShellExecutor runs external commands and reports their lifecycle.
type ShellExecutor struct {
	logger    *zap.Logger
	runner    CommandRunner
	formatter CommandMessageFormatter
	observer  CommandEventObserver
}

// NewShellExecutor validates dependencies and constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, options ...ShellExecutorOption) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	executor := &ShellExecutor{logger: logger, runner: runner}
	for _, option := range options {
		if option != nil {
			option(executor)
		}
	}
	return executor, nil
}

// Execute runs the command. A non-zero exit code yields CommandFailedError and
// a runner failure yields CommandExecutionError; both return an empty result.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.reportStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.reportExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.reportCompleted(command, executionResult)
	if executionResult.ExitCode != 0 {
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	return executionResult, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

func (executor *ShellExecutor) reportStarted(command ShellCommand) {
	if executor.observer != nil {
		executor.observer.CommandStarted(command)
		return
	}
	executor.logger.Info(executor.formatter.BuildStartedMessage(command), executor.commandFields(command)...)
}

func (executor *ShellExecutor) reportCompleted(command ShellCommand, result ExecutionResult) {
	if executor.observer != nil {
		executor.observer.CommandCompleted(command, result)
		return
	}

	fields := append(executor.commandFields(command), zap.Int(logFieldExitCodeConstant, result.ExitCode))
	if result.ExitCode == 0 {
		executor.logger.Info(executor.formatter.BuildSuccessMessage(command), fields...)
		return
	}
	fields = append(fields, zap.String(logFieldStandardErrorConstant, result.StandardError))
	executor.logger.Warn(executor.formatter.BuildFailureMessage(command, result), fields...)
}

func (executor *ShellExecutor) reportExecutionFailed(command ShellCommand, failure error) {
	if executor.observer != nil {
		executor.observer.CommandExecutionFailed(command, failure)
		return
	}
	fields := append(executor.commandFields(command), zap.Error(failure))
	executor.logger.Error(executor.formatter.BuildExecutionFailureMessage(command, failure), fields...)
}

func (executor *ShellExecutor) commandFields(command ShellCommand) []zap.Field {
	return []zap.Field{
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	}
}
