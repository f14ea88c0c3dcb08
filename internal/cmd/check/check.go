// Package check provides the check command, which runs the balance checker over input lines.
package check

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/balance-cli/internal/config"
	"github.com/open-cli-collective/balance-cli/internal/lines"
	"github.com/open-cli-collective/balance-cli/internal/view"
)

// ErrUnbalanced is returned in strict mode when at least one line is not balanced.
var ErrUnbalanced = errors.New("unbalanced expressions found")

// notFoundError carries the localized missing-file notice and unwraps to
// lines.ErrNotFound.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Unwrap() error { return lines.ErrNotFound }

type checkOptions struct {
	file       string
	exprs      []string
	locale     string
	strict     bool
	configPath string
	output     string
	noColor    bool
	verbose    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check bracket balance line by line",
		Long: `Check whether the brackets (), [] and {} on each line of a file are
correctly nested and matched.

Every bracket is traced as it is pushed onto or popped off the matching
stack, followed by a verdict for the line. Other characters are ignored.
Blank lines are skipped. Use "-" to read from standard input.

Without a file argument the configured input file is used
(default: expresiones.txt).`,
		Example: `  # Check the default input file
  bal check

  # Check a specific file
  bal check expressions.txt

  # Check expressions given on the command line
  bal check -e "(a+b)*[c-d]" -e "([)]"

  # Read from stdin, Spanish output, non-zero exit if anything is unbalanced
  cat exprs.txt | bal check - --locale es --strict

  # Write an HTML report
  bal check expressions.txt -o html > report.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			if opts.file != "" && len(opts.exprs) > 0 {
				return fmt.Errorf("a file argument and --expr cannot be combined")
			}
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.verbose, _ = cmd.Flags().GetBool("verbose")
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runCheck(opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.exprs, "expr", "e", nil, "Expression to check instead of reading a file (repeatable)")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "Output language: en, es")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error if any line is not balanced")

	return cmd
}

func runCheck(opts *checkOptions) error {
	cfg, err := config.LoadWithEnv(config.PathOrDefault(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.file != "" {
		cfg.InputFile = opts.file
	}
	if opts.output != "" {
		cfg.OutputFormat = opts.output
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stdout := opts.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	renderer := view.NewRenderer(view.Format(cfg.OutputFormat), cfg.NoColor)
	renderer.SetWriter(stdout)
	renderer.SetLocale(cfg.Locale)

	logger := newLogger(opts.verbose, opts.stderr)
	driver := lines.NewDriver(logger)
	if opts.stdin != nil {
		driver.SetStdin(opts.stdin)
	}

	report := renderer.NewReport()

	var stats lines.Stats
	if len(opts.exprs) > 0 {
		logger.Debug("checking expressions from flags", "count", len(opts.exprs))
		stats, err = driver.CheckExpressions(opts.exprs, report.Line)
	} else {
		stats, err = driver.ProcessFile(cfg.InputFile, report.Line)
	}
	if errors.Is(err, lines.ErrNotFound) {
		return &notFoundError{msg: fmt.Sprintf(renderer.Messages().NotFound, cfg.InputFile)}
	}
	if err != nil {
		return err
	}

	if err := report.Close(stats); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("check complete",
		"checked", stats.Checked,
		"balanced", stats.Balanced,
		"unbalanced", stats.Unbalanced,
		"skipped", stats.Skipped)

	if opts.strict && stats.Unbalanced > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnbalanced, stats.Unbalanced, stats.Checked)
	}

	return nil
}

// newLogger returns a debug logger writing to w when verbose is set, or a discarding one.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
