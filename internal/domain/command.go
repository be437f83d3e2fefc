package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultShell is the interpreter used by NewShellCommand.
const DefaultShell = "sh"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
	Env     []string // Extra KEY=value pairs appended to the inherited environment
}

// NewCommand creates a command that runs program directly with pre-split arguments.
// No shell is involved, so args are passed to the program verbatim.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// NewShellCommand creates a command that hands script to the host shell (sh -c).
// The caller is responsible for the safety of script.
func NewShellCommand(script, dir string) *ExecCommand {
	return NewShellCommandWith(DefaultShell, script, dir)
}

// NewShellCommandWith creates a command that runs script with the given shell.
// An empty shell falls back to DefaultShell.
func NewShellCommandWith(shellProgram, script, dir string) *ExecCommand {
	if shellProgram == "" {
		shellProgram = DefaultShell
	}
	return &ExecCommand{
		Program: shellProgram,
		Args:    []string{"-c", script},
		Dir:     dir,
	}
}

// String returns a human readable form of the command, used in errors and logs.
func (c *ExecCommand) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// ParseCommandLine splits line into an argv slice following shell quoting rules.
// Parameter expansion ($VAR, ${VAR}) is resolved through lookup; a nil lookup
// expands every variable to the empty string. Command substitution, pipes and
// other constructs that need a real shell are rejected.
func ParseCommandLine(line string, lookup func(string) (string, bool)) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, ErrEmptyCommand
	}
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	fields, err := shell.Fields(line, func(name string) string {
		v, _ := lookup(name)
		return v
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommandLine, err)
	}
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	return fields, nil
}

// ValidateScript parses script as a program for shellProgram without running it.
// An empty shellProgram means DefaultShell. Scripts for shells whose grammar
// cannot be parsed here (zsh, fish, ...) are accepted unchecked.
func ValidateScript(script, shellProgram string) error {
	if strings.TrimSpace(script) == "" {
		return ErrEmptyCommand
	}
	if shellProgram == "" {
		shellProgram = DefaultShell
	}
	lang, ok := shellVariant(shellProgram)
	if !ok {
		return nil
	}
	parser := syntax.NewParser(syntax.Variant(lang))
	if _, err := parser.Parse(strings.NewReader(script), "script"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	return nil
}

// shellVariant maps a shell program to the grammar it speaks.
func shellVariant(shellProgram string) (syntax.LangVariant, bool) {
	switch filepath.Base(shellProgram) {
	case "sh", "dash", "ash":
		return syntax.LangPOSIX, true
	case "bash":
		return syntax.LangBash, true
	case "mksh", "ksh":
		return syntax.LangMirBSDKorn, true
	case "bats":
		return syntax.LangBats, true
	default:
		return 0, false
	}
}
