package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"postalform/internal/config"
	"postalform/internal/core/domain/postalcode"
	"postalform/internal/platform/logger"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var validOutputFormats = []string{outputText, outputJSON, outputYAML}

// options is the state shared by every command of one root instance.
type options struct {
	output   string
	envFiles []string
	out      io.Writer
	log      logger.Logger
}

// NewRootCommand builds the postalcode command tree writing results to out.
// Logs go to the zap logger configured from LOGGER_* variables.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{out: out, log: logger.NewNop()}

	root := &cobra.Command{
		Use:           "postalcode",
		Short:         "Validate name and postal code form input",
		Long:          `Runs the same name and postal code rules as the HTTP service, for scripts and local checks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validOutputFormats, opts.output) {
				return fmt.Errorf("invalid output format: %s (valid: %v)", opts.output, validOutputFormats)
			}

			if err := config.LoadDotEnv(opts.envFiles...); err != nil {
				return fmt.Errorf("load env file: %w", err)
			}
			baseCfg, err := config.LoadBase()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := logger.NewZapLogger(baseCfg.LoggerConfig())
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			opts.log = log

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithLogger(ctx, log))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = opts.log.Sync()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.SetOut(out)
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format (text, json, yaml)")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before reading settings (default ./.env if present)")

	root.AddCommand(
		newValidateCommand(opts),
		newFormatsCommand(opts),
		newRulesCommand(opts),
		newVersionCommand(opts),
	)

	return root
}

// InvalidInput reports whether err came from a form that failed validation,
// as opposed to a usage or configuration problem.
func InvalidInput(err error) bool {
	var invalid *postalcode.InvalidInputError
	return errors.As(err, &invalid)
}
