// Package cli provides the command-line interface for hostutil.
package cli

import (
	"fmt"

	"github.com/runoshun/hostutil/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupHost  = "host"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for hostutil.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "hostutil",
		Short: "Read files, run commands and query the environment",
		Long: `hostutil wraps three host primitives behind one CLI:

  read  print a text file
  run   run a command and print its standard output
  env   print environment variables, with a fallback default

Commands run without a shell unless --shell is given.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupHost, Title: "Host Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	readCmd := newReadCommand(c)
	readCmd.GroupID = groupHost

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupHost

	envCmd := newEnvCommand(c)
	envCmd.GroupID = groupHost

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(readCmd, runCmd, envCmd, configCmd)

	return root
}
