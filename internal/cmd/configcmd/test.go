package configcmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/balance-cli/internal/config"
	"github.com/open-cli-collective/balance-cli/internal/lines"
	"github.com/open-cli-collective/balance-cli/internal/view"
)

var errConfigInvalid = errors.New("configuration check failed")

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Validate the configuration",
		Long: `Check that the configuration file parses, that its values are supported,
and that the configured input file exists.`,
		Example: `  # Validate config
  bal config test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTest(optionsFromFlags(cmd))
		},
	}

	return cmd
}

func runTest(opts *options) error {
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	renderer.SetWriter(opts.writer())

	configPath := config.PathOrDefault(opts.configPath)
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		renderer.Error(err.Error())
		return errConfigInvalid
	}
	renderer.Success("Config loaded from " + configPath)

	failed := false
	if err := cfg.Validate(); err != nil {
		renderer.Error(err.Error())
		failed = true
	} else {
		renderer.Success(fmt.Sprintf("Output format %q and locale %q are supported", cfg.OutputFormat, cfg.Locale))
	}

	switch _, err := os.Stat(cfg.InputFile); {
	case cfg.InputFile == lines.StdinPath:
		renderer.Success("Input is read from stdin")
	case err == nil:
		renderer.Success("Input file " + cfg.InputFile + " exists")
	default:
		renderer.Error(fmt.Sprintf(renderer.Messages().NotFound, cfg.InputFile))
		failed = true
	}

	if failed {
		return errConfigInvalid
	}
	return nil
}
