package shell

import (
	"context"
	"fmt"
	"strings"
)

// MockResponse is returned for commands containing Match
type MockResponse struct {
	Match  string
	Stdout string
	Err    error
}

// MockRunner implements Runner for testing
type MockRunner struct {
	Responses []MockResponse

	// Track method calls
	Commands []string
}

// Run returns the first response whose Match is a substring of command
func (m *MockRunner) Run(ctx context.Context, command string) (Result, error) {
	m.Commands = append(m.Commands, command)
	for _, r := range m.Responses {
		if !strings.Contains(command, r.Match) {
			continue
		}
		if r.Err != nil {
			return Result{ExitCode: 1}, r.Err
		}
		return Result{Stdout: []byte(r.Stdout)}, nil
	}
	return Result{ExitCode: 1}, NewMockExecutionError(command)
}

// Reset clears all tracking data for fresh test
func (m *MockRunner) Reset() {
	m.Commands = nil
}

// NewMockExecutionError mimics gh exiting with status 1
func NewMockExecutionError(command string) error {
	return &ExecutionError{
		Command:  command,
		ExitCode: 1,
		Stderr:   "no pull requests found",
		Err:      fmt.Errorf("exit status 1"),
	}
}
