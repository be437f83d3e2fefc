// Package hostutil reads files, runs commands and looks up environment
// variables on the host.
//
// The helpers are thin: they block until done, never retry and never log.
// Text is decoded as strict UTF-8.
package hostutil

import (
	"context"

	"github.com/runoshun/hostutil/internal/domain"
	"github.com/runoshun/hostutil/internal/infra/env"
	"github.com/runoshun/hostutil/internal/infra/executor"
	"github.com/runoshun/hostutil/internal/infra/fileio"
	"github.com/runoshun/hostutil/internal/infra/textcodec"
)

// Errors returned by the helpers. Use errors.Is to match them.
var (
	ErrCommandFailed   = domain.ErrCommandFailed
	ErrInvalidEncoding = domain.ErrInvalidEncoding
)

// CommandError describes a command that exited unsuccessfully.
type CommandError = domain.CommandError

// EnvReader looks up environment variables.
type EnvReader = domain.EnvReader

// ReadFile returns the contents of the file at path as text.
// Open and read errors are *fs.PathError values, so errors.Is(err, fs.ErrNotExist)
// and errors.Is(err, fs.ErrPermission) work as usual.
func ReadFile(path string) (string, error) {
	return fileio.NewReader(domain.DefaultEncoding, 0).ReadFile(path)
}

// RunCommand runs cmd with the host shell (sh -c) and returns its standard output.
// The command reads the process stdin and its standard error goes to the
// process stderr. A non-zero exit status returns a
// *CommandError matching ErrCommandFailed. cmd is not sanitised; prefer Run
// when the arguments are known.
func RunCommand(cmd string) (string, error) {
	return output(context.Background(), domain.NewShellCommand(cmd, ""))
}

// Run executes name with args directly, without a shell, and returns its standard output.
func Run(ctx context.Context, name string, args ...string) (string, error) {
	return output(ctx, domain.NewCommand(name, args, ""))
}

func output(ctx context.Context, cmd *domain.ExecCommand) (string, error) {
	out, err := executor.NewClient().Output(ctx, cmd)
	if err != nil {
		return "", err
	}
	return textcodec.Decode(out, domain.DefaultEncoding)
}

// GetEnv returns the value of the environment variable key. When it is unset
// the first def is returned, or "" without one. A variable set to "" is set.
func GetEnv(key string, def ...string) string {
	return env.Get(env.OS{}, key, def...)
}

// GetEnvFrom is GetEnv against an explicit reader, such as a map in tests.
// A nil r has no variables, so the default is returned.
func GetEnvFrom(r EnvReader, key string, def ...string) string {
	return env.Get(r, key, def...)
}

// LookupEnv returns the value of key and whether it is set.
func LookupEnv(key string) (string, bool) {
	return env.OS{}.Lookup(key)
}

// MapEnv is an EnvReader backed by a map.
type MapEnv = env.Map
