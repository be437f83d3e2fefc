package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/runoshun/hostutil/internal/domain"
)

// TextDecoder converts raw command output into text for an encoding.
type TextDecoder func(data []byte, encoding string) (string, error)

// RunCommandInput contains the parameters for running a command.
// Fields are ordered to minimize memory padding.
type RunCommandInput struct {
	Args     []string // Program and arguments; a single element is split as a command line
	Env      []string // Extra KEY=value pairs for the command
	Dir      string   // Working directory
	Encoding string   // Overrides the configured output encoding
	Shell    bool     // Interpret Args joined by spaces with the configured shell
}

// RunCommandOutput contains the result of running a command.
type RunCommandOutput struct {
	Command *domain.ExecCommand // The command that was run
	Stdout  string              // Decoded standard output
}

// RunCommand is the use case for running an external command and capturing stdout.
type RunCommand struct {
	runner domain.CommandRunner
	env    domain.EnvReader
	decode TextDecoder
	logger *slog.Logger
	dotenv []string // KEY=value pairs from dotenv files, added to every command
	cfg    domain.RunConfig
}

// NewRunCommand creates a new RunCommand use case.
func NewRunCommand(
	runner domain.CommandRunner,
	env domain.EnvReader,
	dotenv []string,
	decode TextDecoder,
	cfg domain.RunConfig,
	logger *slog.Logger,
) *RunCommand {
	return &RunCommand{
		runner: runner,
		env:    env,
		dotenv: dotenv,
		decode: decode,
		cfg:    cfg,
		logger: logger,
	}
}

// Execute builds the command, runs it to completion and decodes its stdout.
// Without Shell no shell is involved: a single argument is split with
// domain.ParseCommandLine and several arguments are used as-is.
func (uc *RunCommand) Execute(ctx context.Context, in RunCommandInput) (*RunCommandOutput, error) {
	cmd, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	// Explicit pairs come last so they override dotenv values.
	cmd.Env = append(slices.Clone(uc.dotenv), in.Env...)

	uc.logger.Debug("run command", "program", cmd.Program, "args", cmd.Args, "dir", cmd.Dir, "shell", in.Shell)

	out, err := uc.runner.Output(ctx, cmd)
	if err != nil {
		return nil, err
	}

	encoding := uc.cfg.Encoding
	if in.Encoding != "" {
		encoding = in.Encoding
	}
	stdout, err := uc.decode(out, encoding)
	if err != nil {
		return nil, err
	}
	return &RunCommandOutput{Command: cmd, Stdout: stdout}, nil
}

func (uc *RunCommand) build(in RunCommandInput) (*domain.ExecCommand, error) {
	if len(in.Args) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	if in.Shell {
		script := strings.Join(in.Args, " ")
		if err := domain.ValidateScript(script, uc.cfg.Shell); err != nil {
			return nil, err
		}
		return domain.NewShellCommandWith(uc.cfg.Shell, script, in.Dir), nil
	}

	argv := in.Args
	if len(argv) == 1 {
		var lookup func(string) (string, bool)
		if uc.env != nil {
			lookup = uc.env.Lookup
		}
		parsed, err := domain.ParseCommandLine(argv[0], lookup)
		if err != nil {
			return nil, err
		}
		argv = parsed
	}
	return domain.NewCommand(argv[0], argv[1:], in.Dir), nil
}
