// Package configcmd provides config management commands.
package configcmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bal configuration",
		Long:  `Commands for viewing, testing, and clearing bal configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdTest())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

type options struct {
	configPath string
	output     string
	noColor    bool
	stdout     io.Writer
}

// optionsFromFlags reads the global flags shared by the config subcommands.
func optionsFromFlags(cmd *cobra.Command) *options {
	opts := &options{stdout: cmd.OutOrStdout()}
	opts.configPath, _ = cmd.Flags().GetString("config")
	opts.output, _ = cmd.Flags().GetString("output")
	opts.noColor, _ = cmd.Flags().GetBool("no-color")
	return opts
}

func (o *options) writer() io.Writer {
	if o.stdout == nil {
		return os.Stdout
	}
	return o.stdout
}
