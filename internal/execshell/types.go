package execshell

import (
	"context"
	"fmt"
	"strings"
)

const (
	commandGitStringConstant                     = "git"
	commandFailedErrorTemplateConstant           = "%s exited with code %d"
	commandFailedWithOutputErrorTemplateConstant = "%s exited with code %d: %s"
	commandExecutionErrorTemplateConstant        = "%s could not be executed: %v"
)

// CommandName identifies an external executable.
type CommandName string

// CommandGit runs the git command-line tool.
const CommandGit CommandName = CommandName(commandGitStringConstant)

// CommandDetails describes the arguments and working directory of a single invocation.
type CommandDetails struct {
	Arguments        []string
	WorkingDirectory string
}

// ShellCommand pairs an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable results of executing a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a command that ran but exited with a non-zero code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failing command and its standard error output.
func (failure CommandFailedError) Error() string {
	commandLabel := describeCommandLine(failure.Command)
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) == 0 {
		return fmt.Sprintf(commandFailedErrorTemplateConstant, commandLabel, failure.Result.ExitCode)
	}
	return fmt.Sprintf(commandFailedWithOutputErrorTemplateConstant, commandLabel, failure.Result.ExitCode, trimmedStandardError)
}

// CommandExecutionError reports a command that could not be started or awaited.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the command and the underlying failure.
func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, describeCommandLine(failure.Command), failure.Cause)
}

// Unwrap exposes the underlying failure.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

// CommandLine renders the command as it would be typed, without shell quoting.
func (command ShellCommand) CommandLine() string {
	return describeCommandLine(command)
}

func describeCommandLine(command ShellCommand) string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
}
