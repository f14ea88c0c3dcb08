package configcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/balance-cli/internal/config"
	"github.com/open-cli-collective/balance-cli/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective bal configuration and where each value comes from.`,
		Example: `  # Show current config
  bal config show

  # As JSON
  bal config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(optionsFromFlags(cmd))
		},
	}

	return cmd
}

func runShow(opts *options) error {
	format := view.Format(opts.output)
	switch format {
	case "", view.FormatTable, view.FormatJSON, view.FormatPlain:
	default:
		return fmt.Errorf("config show supports table, json or plain output, not %q", opts.output)
	}

	configPath := config.PathOrDefault(opts.configPath)

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	source := func(fileValue, envVar string) string {
		if os.Getenv(envVar) != "" {
			return envVar
		}
		if fileValue != "" {
			return "config"
		}
		return "default"
	}

	noColorFile := ""
	if fileCfg.NoColor {
		noColorFile = "true"
	}

	rows := [][]string{
		{"input_file", cfg.InputFile, source(fileCfg.InputFile, config.EnvInputFile)},
		{"output_format", cfg.OutputFormat, source(fileCfg.OutputFormat, config.EnvOutput)},
		{"locale", cfg.Locale, source(fileCfg.Locale, config.EnvLocale)},
		{"no_color", strconv.FormatBool(cfg.NoColor), source(noColorFile, config.EnvNoColor)},
	}

	renderer := view.NewRenderer(format, opts.noColor)
	renderer.SetWriter(opts.writer())
	renderer.RenderTable([]string{"KEY", "VALUE", "SOURCE"}, rows)

	if renderer.Format() != view.FormatTable {
		return nil
	}

	renderer.RenderText("")
	renderer.RenderKeyValue("Config file", configPath)
	if fileErr != nil {
		renderer.RenderText("(file not found)")
	}

	return nil
}
