package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"postalform/internal/core/domain/postalcode"
	"postalform/internal/version"
)

func newFormatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the accepted postal code formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			families := postalcode.Families()
			return render(opts.out, opts.output, families, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tEXAMPLES\tPATTERN")
				for _, f := range families {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, strings.Join(f.Examples, ", "), f.Expr)
				}
				return tw.Flush()
			})
		},
	}
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Info()
			return render(opts.out, opts.output, info, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, info)
				return err
			})
		},
	}
}
