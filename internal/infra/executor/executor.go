// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/runoshun/hostutil/internal/domain"
)

// Client implements domain.CommandRunner interface.
type Client struct {
	stdin  io.Reader // Source for the child's stdin; nil reads from the null device
	stderr io.Writer // Destination for the child's stderr; nil discards
}

// NewClient creates a new command executor client.
// Commands inherit the process stdin and write their stderr to the process stderr.
func NewClient() *Client {
	return &Client{stdin: os.Stdin, stderr: os.Stderr}
}

// NewClientWithIO creates a client that feeds stdin to commands and sends their stderr to stderr.
func NewClientWithIO(stdin io.Reader, stderr io.Writer) *Client {
	return &Client{stdin: stdin, stderr: stderr}
}

// Ensure Client implements domain.CommandRunner interface.
var _ domain.CommandRunner = (*Client)(nil)

func (c *Client) command(ctx context.Context, cmd *domain.ExecCommand) *exec.Cmd {
	// #nosec G204 - shell use is an explicit opt-in made by the caller
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}
	return execCmd
}

// Output runs the command, waits for it to exit and returns its standard output.
// A non-zero exit status yields a *domain.CommandError wrapping the *exec.ExitError.
func (c *Client) Output(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	if cmd == nil || cmd.Program == "" {
		return nil, domain.ErrEmptyCommand
	}
	execCmd := c.command(ctx, cmd)
	var stdout bytes.Buffer
	execCmd.Stdin = c.stdin
	execCmd.Stdout = &stdout
	execCmd.Stderr = c.stderr
	if err := execCmd.Run(); err != nil {
		return stdout.Bytes(), commandError(cmd, err)
	}
	return stdout.Bytes(), nil
}

func commandError(cmd *domain.ExecCommand, err error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return &domain.CommandError{
		Command:  cmd.String(),
		ExitCode: exitCode,
		Err:      err,
	}
}
