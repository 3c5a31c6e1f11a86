package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"postalform/internal/adapters/validator"
	"postalform/internal/config"
	"postalform/internal/core/domain/postalcode"
)

// policyFlags are the per-invocation overrides of the VALIDATION_* settings.
type policyFlags struct {
	whitespace string
	zipMax     int
}

func (f *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.whitespace, "whitespace", "", "zip code padding handling (trim, reject)")
	cmd.Flags().IntVar(&f.zipMax, "zip-max", 0, "maximum zip code length")
}

func (f *policyFlags) policy(cmd *cobra.Command) (postalcode.Policy, error) {
	cfg, err := config.LoadValidation()
	if err != nil {
		return postalcode.Policy{}, fmt.Errorf("load validation config: %w", err)
	}
	policy := cfg.Policy()

	if cmd.Flags().Changed("whitespace") {
		if err := policy.Whitespace.Decode(f.whitespace); err != nil {
			return postalcode.Policy{}, err
		}
	}
	if cmd.Flags().Changed("zip-max") {
		policy.ZipMaxLength = f.zipMax
	}
	return policy, nil
}

// build returns a validator for the effective policy backed by the playground checker.
func (f *policyFlags) build(cmd *cobra.Command) (*postalcode.Validator, error) {
	policy, err := f.policy(cmd)
	if err != nil {
		return nil, err
	}
	checker, err := validator.NewPlaygroundAdapter()
	if err != nil {
		return nil, err
	}
	return postalcode.NewValidator(checker, policy)
}
