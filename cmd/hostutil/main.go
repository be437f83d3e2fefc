// Package main is the entry point for the hostutil CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/hostutil/internal/app"
	"github.com/runoshun/hostutil/internal/cli"
	"github.com/runoshun/hostutil/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI and returns the process exit status.
// A failed child command propagates its own exit status.
func run(args []string, stderr io.Writer) int {
	cwd, err := os.Getwd()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to get current directory: %v\n", err)
		return 1
	}

	container, err := app.New(cwd)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to initialize: %v\n", err)
		return 1
	}

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps an error to a process exit status.
func exitCode(err error) int {
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}
