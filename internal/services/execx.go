package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// outputCap bounds captured process output per stream.
const outputCap = 64 * 1024

// CommandRequest describes one external process invocation. Arguments are
// always a vector; nothing here ever passes through a shell.
type CommandRequest struct {
	Binary  string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// CommandResult captures the outcome of a process invocation.
type CommandResult struct {
	ExitCode  int
	Stdout    string
	Stderr    string
	Truncated bool
}

// CommandRunner abstracts process execution so external tool clients can be
// exercised with test doubles.
type CommandRunner interface {
	Run(ctx context.Context, req CommandRequest) (CommandResult, error)
}

// NewCommandRunner returns the production runner backed by os/exec.
func NewCommandRunner() CommandRunner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, req CommandRequest) (CommandResult, error) {
	if req.Binary == "" {
		return CommandResult{ExitCode: -1}, Wrap(ErrConfiguration, "execx", "run", "binary required", nil)
	}

	runCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	if _, err := exec.LookPath(req.Binary); err != nil {
		return CommandResult{ExitCode: -1}, Wrap(ErrExternalTool, "execx", "lookup", req.Binary, err)
	}

	cmd := exec.CommandContext(runCtx, req.Binary, req.Args...) //nolint:gosec
	cmd.Dir = req.Dir

	stdout := newCappedBuffer(outputCap)
	stderr := newCappedBuffer(outputCap)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	result := CommandResult{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.truncated || stderr.truncated,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	} else {
		result.ExitCode = -1
	}

	if err != nil {
		if runCtx.Err() != nil && ctx.Err() == nil {
			return result, Wrap(ErrTimeout, "execx", "run", req.Binary, runCtx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, Wrap(ErrExternalTool, "execx", "run", fmt.Sprintf("%s exited %d", req.Binary, result.ExitCode), nil)
		}
		return result, Wrap(ErrExternalTool, "execx", "run", req.Binary, err)
	}
	return result, nil
}

// cappedBuffer keeps at most cap bytes and records whether writes overflowed.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	remaining := b.limit - b.buf.Len()
	if remaining <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if len(p) > remaining {
		b.truncated = true
		_, err := b.buf.Write(p[:remaining])
		return len(p), err
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string { return b.buf.String() }

var _ io.Writer = (*cappedBuffer)(nil)
