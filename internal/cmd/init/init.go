// Package init provides the init command for bal.
package init

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/balance-cli/internal/config"
	"github.com/open-cli-collective/balance-cli/internal/view"
)

type initOptions struct {
	configPath     string
	inputFile      string
	output         string
	locale         string
	nonInteractive bool
	stdout         io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize bal configuration",
		Long: `Initialize bal with your preferred defaults.

This command will guide you through choosing the default input file,
output format and language. The configuration will be saved to
~/.config/bal/config.yml.`,
		Example: `  # Interactive setup
  bal init

  # Pre-populate the input file
  bal init --input expressions.txt

  # Save without prompting
  bal init --input expressions.txt --locale es -o plain --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.stdout = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.inputFile, "input", "", "Default input file (e.g., expresiones.txt)")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "Output language: en, es")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Save the given values without prompting")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := config.PathOrDefault(opts.configPath)
	w := opts.stdout
	if w == nil {
		w = os.Stdout
	}

	if !opts.nonInteractive {
		if _, err := os.Stat(configPath); err == nil {
			var overwrite bool
			err := huh.NewConfirm().
				Title("Configuration already exists").
				Description(fmt.Sprintf("Overwrite %s?", configPath)).
				Value(&overwrite).
				Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(w, "Initialization cancelled.")
				return nil
			}
		}
	}

	cfg := &config.Config{
		InputFile:    opts.inputFile,
		OutputFormat: opts.output,
		Locale:       opts.locale,
	}
	cfg.ApplyDefaults()

	if !opts.nonInteractive {
		if err := newForm(cfg).Run(); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(w, "\nYou're all set! Try running:")
	fmt.Fprintln(w, "  bal check")
	fmt.Fprintln(w, "  bal check -e \"(a+b)*[c-d]\"")

	return nil
}

// newForm builds the interactive setup form, bound to cfg.
func newForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input file").
				Description("File checked when `bal check` is run without arguments").
				Placeholder(config.DefaultInputFile).
				Value(&cfg.InputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("input file is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&cfg.OutputFormat),

			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("Español", "es"),
				).
				Value(&cfg.Locale),

			huh.NewConfirm().
				Title("Disable colored output?").
				Value(&cfg.NoColor),
		),
	)
}
