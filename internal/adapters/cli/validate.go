package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"postalform/internal/core/domain/postalcode"
	postalUsecase "postalform/internal/core/usecase/postalcode"
)

type validateOutput struct {
	Valid   bool                  `json:"valid" yaml:"valid"`
	Cleaned *postalcode.FormInput `json:"cleaned,omitempty" yaml:"cleaned,omitempty"`
	Format  string                `json:"format,omitempty" yaml:"format,omitempty"`
	Errors  map[string][]string   `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func newValidateCommand(opts *options) *cobra.Command {
	var (
		input     postalcode.FormInput
		overrides policyFlags
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate one name and zip code pair",
		Long: `Validates --name and --zip with the configured rules. Rule parameters
come from the VALIDATION_* environment variables; --whitespace and --zip-max
override them. Exits non-zero when the input is invalid.`,
		Example: `  postalcode validate --name "Ada Lovelace" --zip "SW1A 0AA"
  postalcode validate --name Ada --zip " 12345 " --whitespace reject -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formValidator, err := overrides.build(cmd)
			if err != nil {
				return err
			}

			usecase := postalUsecase.NewUsecase(formValidator, discardRecorder{})
			result := usecase.Validate(cmd.Context(), input)

			if err := render(opts.out, opts.output, newValidateOutput(result), func(w io.Writer) error {
				return writeValidateText(w, result)
			}); err != nil {
				return err
			}

			return result.Err()
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "name field value")
	cmd.Flags().StringVar(&input.ZipCode, "zip", "", "zip code field value")
	overrides.register(cmd)

	return cmd
}

func newValidateOutput(result postalcode.Result) validateOutput {
	if !result.Valid() {
		return validateOutput{Valid: false, Errors: result.Errors()}
	}

	cleaned := result.Cleaned
	out := validateOutput{Valid: true, Cleaned: &cleaned}
	if family, ok := postalcode.MatchFamily(cleaned.ZipCode); ok {
		out.Format = family.Name
	}
	return out
}

func writeValidateText(w io.Writer, result postalcode.Result) error {
	if result.Valid() {
		_, err := fmt.Fprintf(w, "valid: name=%q zipCode=%q\n", result.Cleaned.Name, result.Cleaned.ZipCode)
		return err
	}

	for _, v := range result.Violations {
		if _, err := fmt.Fprintf(w, "%s: %s\n", v.Field, v.Message); err != nil {
			return err
		}
	}
	return nil
}
