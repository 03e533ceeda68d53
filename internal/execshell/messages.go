package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	flagPrefixConstant                      = "-"
)

const (
	gitStatusSubcommandNameConstant = "status"
	gitAddSubcommandNameConstant    = "add"
	gitCommitSubcommandNameConstant = "commit"
	gitMessageFlagConstant          = "-m"
	gitPathspecSeparatorConstant    = "--"
)

const (
	gitStatusStartTemplateConstant            = "Reviewing working tree status in %s"
	gitStatusSuccessTemplateConstant          = "Collected working tree status for %s"
	gitStatusFailureTemplateConstant          = "Failed to review working tree status in %s (exit code %d%s)"
	gitStatusExecutionFailureTemplateConstant = "Unable to review working tree status in %s: %s"
	gitAddStartTemplateConstant               = "Staging %s in %s"
	gitAddSuccessTemplateConstant             = "Staged %s in %s"
	gitAddFailureTemplateConstant             = "Failed to stage %s in %s (exit code %d%s)"
	gitAddExecutionFailureTemplateConstant    = "Unable to stage %s in %s: %s"
	gitCommitStartTemplateConstant            = "Committing %s in %s with message %q"
	gitCommitSuccessTemplateConstant          = "Committed %s in %s with message %q"
	gitCommitFailureTemplateConstant          = "Failed to commit %s in %s with message %q (exit code %d%s)"
	gitCommitExecutionFailureTemplateConstant = "Unable to commit %s in %s with message %q: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch strings.TrimSpace(command.Details.Arguments[0]) {
	case gitStatusSubcommandNameConstant:
		return formatter.describeGitStatusMessage(command, result, failure, stage)
	case gitAddSubcommandNameConstant:
		return formatter.describeGitAddMessage(command, result, failure, stage)
	case gitCommitSubcommandNameConstant:
		return formatter.describeGitCommitMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitStatusMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitStatusStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitStatusSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitStatusFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitStatusExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitAddMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	target := formatter.ensureValue(formatter.extractFirstNonFlagArgument(command.Details.Arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitAddStartTemplateConstant, target, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitAddSuccessTemplateConstant, target, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitAddFailureTemplateConstant, target, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitAddExecutionFailureTemplateConstant, target, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCommitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	commitMessage := formatter.extractCommitMessage(command.Details.Arguments)
	target := formatter.ensureValue(formatter.extractPathspec(command.Details.Arguments))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCommitStartTemplateConstant, target, workingDirectory, commitMessage)
	case messageStageSuccess:
		return fmt.Sprintf(gitCommitSuccessTemplateConstant, target, workingDirectory, commitMessage)
	case messageStageFailure:
		return fmt.Sprintf(gitCommitFailureTemplateConstant, target, workingDirectory, commitMessage, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCommitExecutionFailureTemplateConstant, target, workingDirectory, commitMessage, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := describeCommandLine(command) + formatter.formatWorkingDirectorySuffix(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) extractFirstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) extractCommitMessage(arguments []string) string {
	for index := 0; index+1 < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == gitMessageFlagConstant {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return fallbackUnknownValueLabelConstant
}

// extractPathspec returns the paths following the "--" separator.
func (formatter CommandMessageFormatter) extractPathspec(arguments []string) string {
	for index, argument := range arguments {
		if argument == gitPathspecSeparatorConstant {
			return strings.Join(arguments[index+1:], commandArgumentsJoinSeparatorConstant)
		}
	}
	return emptyStringConstant
}
