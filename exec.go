package tsfy

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// ExecuteInteractive runs a command with stdin/stdout/stderr connected
	// to the executor's streams and waits for it to exit.
	ExecuteInteractive(ctx context.Context, name string, args ...string) error
}

// OSExecutor runs commands with os/exec.
type OSExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultExecutor returns an executor that inherits the process streams.
func DefaultExecutor() *OSExecutor {
	return &OSExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *OSExecutor) ExecuteInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd.Run()
}
