package configcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/balance-cli/internal/config"
	"github.com/open-cli-collective/balance-cli/internal/view"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the bal configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  bal config clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClear(optionsFromFlags(cmd))
		},
	}

	return cmd
}

func runClear(opts *options) error {
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	renderer.SetWriter(opts.writer())

	configPath := config.PathOrDefault(opts.configPath)

	err := os.Remove(configPath)
	missing := errors.Is(err, fs.ErrNotExist)
	if err != nil && !missing {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	if missing {
		renderer.Success("No config file to remove")
	} else {
		renderer.Success("Configuration cleared from " + configPath)
	}

	var activeVars []string
	for _, v := range []string{config.EnvInputFile, config.EnvOutput, config.EnvLocale, config.EnvNoColor} {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		dim := color.New(color.Faint)
		_, _ = dim.Fprintf(opts.writer(), "\nNote: Environment variables will still be used: %s\n", strings.Join(activeVars, ", "))
	}

	return nil
}
