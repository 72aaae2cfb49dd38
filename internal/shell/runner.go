// Package shell runs composed gh command lines.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	gh "github.com/cli/go-gh/v2"
	"github.com/mattn/go-shellwords"
)

// Program is the only executable the runner accepts
const Program = "gh"

const logPreviewBytes = 200

// Result is the outcome of one command
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner executes a command line and returns its output
type Runner interface {
	Run(ctx context.Context, command string) (Result, error)
}

// ExecutionError is returned when a command exits non-zero or cannot be started
type ExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q failed with exit code %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("command %q failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// GhRunner splits a command line into words and hands them to the gh binary
type GhRunner struct {
	logger *log.Logger
	exec   func(ctx context.Context, args ...string) (stdout, stderr []byte, err error)
}

// NewGhRunner creates a runner backed by go-gh
func NewGhRunner(logger *log.Logger) *GhRunner {
	return &GhRunner{
		logger: logger.With("module", "shell"),
		exec: func(ctx context.Context, args ...string) ([]byte, []byte, error) {
			stdout, stderr, err := gh.ExecContext(ctx, args...)
			return stdout.Bytes(), stderr.Bytes(), err
		},
	}
}

// Run executes command, which must start with "gh"
func (r *GhRunner) Run(ctx context.Context, command string) (Result, error) {
	r.logger.Debug("Executing shell command", "command", command)

	args, err := shellwords.Parse(command)
	if err != nil {
		return Result{}, fmt.Errorf("failed to split command %q: %w", command, err)
	}
	if len(args) == 0 || args[0] != Program {
		return Result{}, fmt.Errorf("refusing to run %q: only %s commands are supported", command, Program)
	}

	stdout, stderr, err := r.exec(ctx, args[1:]...)
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Warn("Command execution failed", "command", command, "exitCode", exitCode, "err", err)
		return Result{ExitCode: exitCode, Stdout: stdout, Stderr: stderr}, &ExecutionError{
			Command:  command,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(string(stderr)),
			Err:      err,
		}
	}

	r.logger.Debug("Command completed successfully",
		"command", command,
		"exitCode", 0,
		"stdout", preview(stdout),
	)
	return Result{Stdout: stdout, Stderr: stderr}, nil
}

func preview(b []byte) string {
	if len(b) > logPreviewBytes {
		return string(b[:logPreviewBytes])
	}
	return string(b)
}
