package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

type implExecutor struct {
	stream io.Writer
}

// New creates a new Executor instance.
// When stream is non-nil the command output is copied to it while it runs.
func New(stream io.Writer) Executor {
	return &implExecutor{stream: stream}
}

// Run runs an external command to completion and reports its exit status
func (e *implExecutor) Run(ctx context.Context, c Command) Result {
	startTime := time.Now()
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)

	var output bytes.Buffer
	var w io.Writer = &output
	if e.stream != nil {
		w = io.MultiWriter(&output, e.stream)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	res := Result{
		Output:   output.String(),
		Duration: time.Since(startTime),
	}
	if err == nil {
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		res.Err = fmt.Errorf("command '%s' failed: %w", c.Program, err)
		return res
	}

	// Command never started (missing binary, bad working directory, ...)
	res.ExitCode = -1
	res.Err = fmt.Errorf("start command '%s': %w", c.Program, err)
	return res
}

// LookPath checks that the named program resolves on PATH
func LookPath(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("look up %s: %w", name, err)
	}
	return nil
}
