package cli

import (
	"fmt"

	"github.com/runoshun/hostutil/internal/app"
	"github.com/runoshun/hostutil/internal/usecase"
	"github.com/spf13/cobra"
)

// newReadCommand creates the read command.
func newReadCommand(c *app.Container) *cobra.Command {
	var opts struct {
		encoding string
		maxBytes int64
		lines    bool
		number   bool
	}

	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Print the text contents of a file",
		Long: `Print the text contents of a file.

The file is decoded with the configured encoding (utf-8 by default); invalid
byte sequences are an error. Use --lines to stream the file line by line
instead of loading it into memory.`,
		Example: `  hostutil read README.md
  hostutil read --encoding latin1 legacy.txt
  hostutil read --lines --number big.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.ReadFileInput{
				Path:     args[0],
				Encoding: opts.encoding,
			}
			if cmd.Flags().Changed("max-bytes") {
				in.MaxBytes = &opts.maxBytes
			}

			w := cmd.OutOrStdout()
			if opts.lines || opts.number {
				n := 0
				in.OnLine = func(line string) error {
					n++
					if opts.number {
						_, err := fmt.Fprintf(w, "%6d\t%s\n", n, line)
						return err
					}
					_, err := fmt.Fprintln(w, line)
					return err
				}
			}

			out, err := c.ReadFileUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if in.OnLine == nil {
				_, _ = fmt.Fprint(w, out.Content)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "Text encoding of the file (default from config)")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", 0, "Refuse files larger than this many bytes (0 = unlimited)")
	cmd.Flags().BoolVarP(&opts.lines, "lines", "l", false, "Stream the file line by line")
	cmd.Flags().BoolVarP(&opts.number, "number", "n", false, "Prefix each line with its number (implies --lines)")

	return cmd
}
