package execshell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// OSCommandRunner executes commands using the operating system facilities.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by os/exec.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the supplied command as an argument vector; no shell is involved.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	commandArguments := append([]string{}, command.Details.Arguments...)
	executable := exec.CommandContext(executionContext, string(command.Name), commandArguments...)
	executable.Dir = command.Details.WorkingDirectory

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	executable.Stdout = &standardOutputBuffer
	executable.Stderr = &standardErrorBuffer

	exitCode := 0
	if runError := executable.Run(); runError != nil {
		var exitError *exec.ExitError
		if !errors.As(runError, &exitError) {
			return ExecutionResult{}, runError
		}
		exitCode = exitError.ExitCode()
	}

	return ExecutionResult{
		StandardOutput: standardOutputBuffer.String(),
		StandardError:  standardErrorBuffer.String(),
		ExitCode:       exitCode,
	}, nil
}
