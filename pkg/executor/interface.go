package executor

import (
	"context"
	"strings"
	"time"
)

// Executor defines the interface for executing external commands
type Executor interface {
	Run(ctx context.Context, cmd Command) Result
}

// Command is one external invocation: a program plus its argument list.
type Command struct {
	Program string
	Args    []string
}

// NewCommand creates a Command, copying args so later edits by the caller do not leak in.
func NewCommand(program string, args ...string) Command {
	return Command{
		Program: program,
		Args:    append([]string(nil), args...),
	}
}

// Argv returns the full argument vector including the program name
func (c Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Result describes how a command finished.
type Result struct {
	ExitCode int
	Output   string
	Duration time.Duration
	Err      error
}

// Success reports whether the command exited with status 0
func (r Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}
