// Package root provides the root command for the bal CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/balance-cli/internal/cmd/check"
	"github.com/open-cli-collective/balance-cli/internal/cmd/completion"
	"github.com/open-cli-collective/balance-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/balance-cli/internal/cmd/init"
	"github.com/open-cli-collective/balance-cli/internal/version"
)

// NewCmdRoot creates the root command for bal.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bal",
		Short: "Check that brackets in expressions are balanced",
		Long: `bal reads expressions line by line and checks that their brackets
(), [] and {} are correctly nested and matched.

For each line it prints a trace of the stack operations performed while
scanning and a final verdict.

Get started by running: bal check <file>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/bal/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain, markdown, html (default from config, else table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")

	cmd.SetVersionTemplate(version.Template())

	// Subcommands
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
