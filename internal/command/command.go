package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single tool invocation.
const DefaultTimeout = 10 * time.Second

// ErrEmptyOutput is returned by Output when a tool succeeds without printing anything.
var ErrEmptyOutput = errors.New("command produced no output")

// CommandRunner is the interface for running commands.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string) (stdout, stderr []byte, err error)
}

// ExecCommandRunner uses os/exec.
type ExecCommandRunner struct{}

// Run runs a command.
func (ExecCommandRunner) Run(ctx context.Context, name string, args []string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// Executor runs a single tool with a timeout.
type Executor struct {
	runner  CommandRunner
	name    string
	timeout time.Duration
}

// NewExecutor creates an executor for the named tool using os/exec.
func NewExecutor(name string, timeout time.Duration) *Executor {
	return NewExecutorWithRunner(name, timeout, ExecCommandRunner{})
}

// NewExecutorWithRunner creates an executor with a custom runner.
func NewExecutorWithRunner(name string, timeout time.Duration, runner CommandRunner) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if runner == nil {
		runner = ExecCommandRunner{}
	}

	return &Executor{
		runner:  runner,
		name:    name,
		timeout: timeout,
	}
}

// Name returns the tool the executor runs.
func (e *Executor) Name() string {
	return e.name
}

// Execute runs the command and returns its raw output.
func (e *Executor) Execute(ctx context.Context, args ...string) (stdout, stderr []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	return e.runner.Run(ctx, e.name, args)
}

// Output runs the command and returns its stdout with surrounding whitespace removed.
// A failed run is reported together with whatever the tool wrote to stderr.
func (e *Executor) Output(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := e.Execute(ctx, args...)
	if err != nil {
		if s := strings.TrimSpace(string(stderr)); s != "" {
			return "", fmt.Errorf("%s %s: %w: %s", e.name, strings.Join(args, " "), err, s)
		}
		return "", fmt.Errorf("%s %s: %w", e.name, strings.Join(args, " "), err)
	}

	out := strings.TrimSpace(string(stdout))
	if out == "" {
		return "", fmt.Errorf("%s %s: %w", e.name, strings.Join(args, " "), ErrEmptyOutput)
	}

	return out, nil
}
