package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"
)

// ShellCommandRunner is a CommandRunner implementation that executes a
// full command line through the host shell. The synthesized commands are
// complete command lines, so they are handed to the shell as-is instead
// of being split into argv.
type ShellCommandRunner struct {
	goos string
}

// NewShellCommandRunner creates a new ShellCommandRunner for the current host
func NewShellCommandRunner() interfaces.CommandRunner {
	return &ShellCommandRunner{goos: runtime.GOOS}
}

// Run executes a command line and captures its outcome. A non-zero exit
// code is returned in the result, not as an error; the error is only set
// when the command could not be started.
func (r *ShellCommandRunner) Run(ctx context.Context, commandLine string) (*interfaces.RunResult, error) {
	var cmd *exec.Cmd
	if r.goos == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", commandLine)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", commandLine)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &interfaces.RunResult{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}, nil
		}
		return nil, errors.NewSystemError(
			fmt.Sprintf("failed to start command: %s", commandLine),
			err,
		)
	}

	return &interfaces.RunResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// RunWithTimeout executes a command line with a deadline
func (r *ShellCommandRunner) RunWithTimeout(ctx context.Context, timeout time.Duration, commandLine string) (*interfaces.RunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := r.Run(ctx, commandLine)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewTimeoutError(
				fmt.Sprintf("command execution timeout: %s (timeout: %v)", commandLine, timeout),
			)
		}
		return nil, err
	}

	// Context expiry kills the child; the shell then reports a non-zero
	// exit, which must surface as a timeout rather than an apply failure.
	if ctx.Err() == context.DeadlineExceeded {
		return nil, errors.NewTimeoutError(
			fmt.Sprintf("command execution timeout: %s (timeout: %v)", commandLine, timeout),
		)
	}

	return result, nil
}
