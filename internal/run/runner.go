package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
)

// Output holds the captured streams of a finished child process.
type Output struct {
	// Stdout is the raw captured standard output
	Stdout []byte

	// Stderr is the raw captured standard error
	Stderr []byte
}

// Empty reports whether both captured streams are empty.
func (o *Output) Empty() bool {
	return len(o.Stdout) == 0 && len(o.Stderr) == 0
}

// ExitError is returned when the child process exits non-zero. The
// captured output is always attached so callers can inspect it when
// classifying the failure.
type ExitError struct {
	// Name is the command that was run
	Name string

	// Output holds whatever was captured before the process exited
	Output *Output

	// Err is the underlying process error
	Err error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Name, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Runner executes a command to completion and captures its output.
// The environment passed to the child is exactly the provided mapping;
// nothing is inherited from the calling process. A non-zero exit is
// reported as an *ExitError carrying the captured output; any other
// error means the process never ran.
type Runner interface {
	Run(ctx context.Context, name string, env map[string]string, args ...string) (*Output, error)
}

// execRunner is the os/exec-backed Runner used outside of tests.
type execRunner struct{}

// NewRunner returns the real process runner.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, env map[string]string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = flattenEnv(env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := &Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and exited non-zero; output was
			// still captured.
			return nil, &ExitError{Name: name, Output: output, Err: err}
		}
		// Start failure (binary missing, context cancelled): no
		// process ever ran, so there is no output to attach.
		return nil, fmt.Errorf("starting %q: %w", name, err)
	}
	return output, nil
}

// flattenEnv converts a variable mapping to the KEY=VALUE slice form
// expected by os/exec. Sorted so the child sees a deterministic
// environment block.
func flattenEnv(env map[string]string) []string {
	flat := make([]string, 0, len(env))
	for name, value := range env {
		flat = append(flat, name+"="+value)
	}
	sort.Strings(flat)
	return flat
}
