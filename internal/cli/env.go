package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/hostutil/internal/app"
	"github.com/runoshun/hostutil/internal/usecase"
	"github.com/spf13/cobra"
)

// newEnvCommand creates the env command.
func newEnvCommand(c *app.Container) *cobra.Command {
	var opts struct {
		def      string
		output   string
		envFiles []string
	}

	cmd := &cobra.Command{
		Use:   "env <name> [name...]",
		Short: "Print environment variables",
		Long: `Print the value of one or more environment variables.

A variable that is set (even to the empty string) prints its value. An unset
variable prints the --default value, or an empty line when no default is given.
Dotenv files from --env-file and the [env] config section are consulted before
the process environment.`,
		Example: `  hostutil env HOME
  hostutil env --default 8080 PORT
  hostutil env --env-file .env.local DATABASE_URL API_KEY`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.output); err != nil {
				return err
			}

			in := usecase.GetEnvInput{
				Keys:     args,
				EnvFiles: opts.envFiles,
			}
			if cmd.Flags().Changed("default") {
				in.Default = &opts.def
			}

			out, err := c.GetEnvUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.output != formatText {
				return writeStructured(w, opts.output, out.Vars)
			}

			if len(out.Vars) == 1 {
				_, _ = fmt.Fprintln(w, out.Vars[0].Value)
				return nil
			}

			r := lipgloss.NewRenderer(w)
			keyStyle := r.NewStyle().Bold(true)
			unsetStyle := r.NewStyle().Faint(true)
			for _, v := range out.Vars {
				key := keyStyle.Render(v.Key)
				if !v.Set {
					key = unsetStyle.Render(v.Key)
				}
				_, _ = fmt.Fprintf(w, "%s=%s\n", key, v.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.def, "default", "d", "", "Value printed for unset variables")
	cmd.Flags().StringArrayVar(&opts.envFiles, "env-file", nil, "Dotenv file consulted before the environment (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text, json or yaml")

	return cmd
}
