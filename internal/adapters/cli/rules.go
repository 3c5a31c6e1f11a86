package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"postalform/internal/core/domain/postalcode"
)

type rulesOutput struct {
	Policy postalcode.Policy `json:"policy" yaml:"policy"`
	Rules  []postalcode.Rule `json:"rules" yaml:"rules"`
}

func newRulesCommand(opts *options) *cobra.Command {
	var overrides policyFlags

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the effective policy and rule table",
		Long: `Prints the rule table validate would apply, in evaluation order, after
VALIDATION_* variables and the --whitespace and --zip-max overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formValidator, err := overrides.build(cmd)
			if err != nil {
				return err
			}

			out := rulesOutput{Policy: formValidator.Policy(), Rules: formValidator.Rules()}
			return render(opts.out, opts.output, out, func(w io.Writer) error {
				return writeRulesText(w, out)
			})
		},
	}
	overrides.register(cmd)

	return cmd
}

func writeRulesText(w io.Writer, out rulesOutput) error {
	p := out.Policy
	if _, err := fmt.Fprintf(w, "whitespace=%s name=[%d,%d] zipCode=[%d,%d] stopOnRequired=%t\n\n",
		p.Whitespace, p.NameMinLength, p.NameMaxLength, p.ZipMinLength, p.ZipMaxLength, p.StopOnRequired); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tKIND\tTAG\tFATAL\tMESSAGE")
	for _, r := range out.Rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Field, r.Kind, r.Tag, strconv.FormatBool(r.Fatal), r.Message)
	}
	return tw.Flush()
}
