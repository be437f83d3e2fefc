package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/hostutil/internal/app"
	"github.com/runoshun/hostutil/internal/usecase"
	"github.com/spf13/cobra"
)

// runResult is the structured form of a run command result.
type runResult struct {
	Program string   `json:"program" yaml:"program"`
	Args    []string `json:"args" yaml:"args"`
	Stdout  string   `json:"stdout" yaml:"stdout"`
}

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		dir      string
		encoding string
		output   string
		env      []string
		shell    bool
	}

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command and print its standard output",
		Long: `Run a command, wait for it to finish and print its standard output.

Standard error is passed through untouched. A non-zero exit status is an error
and hostutil exits with the same status.

Without --shell the command is executed directly. A single argument is split
into words with shell quoting rules and $VAR expansion, but pipes, redirects
and command substitution are rejected. With --shell the arguments are joined
and handed to the configured shell ("sh" by default); the caller is responsible
for the safety of the script.`,
		Example: `  hostutil run -- git status --short
  hostutil run 'printf "%s\n" "$HOME"'
  hostutil run --shell 'ls | wc -l'
  hostutil run -o json -- uname -a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.output); err != nil {
				return err
			}
			for _, kv := range opts.env {
				if !strings.Contains(kv, "=") {
					return fmt.Errorf("invalid --env %q (expected KEY=VALUE)", kv)
				}
			}

			out, err := c.RunCommandUseCase().Execute(cmd.Context(), usecase.RunCommandInput{
				Args:     args,
				Env:      opts.env,
				Dir:      opts.dir,
				Encoding: opts.encoding,
				Shell:    opts.shell,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.output == formatText {
				_, _ = fmt.Fprint(w, out.Stdout)
				return nil
			}
			return writeStructured(w, opts.output, runResult{
				Program: out.Command.Program,
				Args:    out.Command.Args,
				Stdout:  out.Stdout,
			})
		},
	}

	// Flags after the command name belong to the command.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&opts.shell, "shell", "s", false, "Interpret the command with the configured shell")
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Working directory for the command")
	cmd.Flags().StringArrayVarP(&opts.env, "env", "e", nil, "Extra environment variable KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "Text encoding of the command output (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text, json or yaml")

	return cmd
}
