// Package lines feeds an input source through the balance checker one line at a time.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/open-cli-collective/balance-cli/pkg/balance"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// ErrNotFound is returned when the input file does not exist.
var ErrNotFound = errors.New("input file not found")

// Line is one physical line of input and its check result.
type Line struct {
	Number  int            `json:"number"`
	Text    string         `json:"text"`
	Skipped bool           `json:"skipped"`
	Result  balance.Result `json:"-"`
}

// Stats summarizes a processing run.
type Stats struct {
	Total      int `json:"total"`
	Checked    int `json:"checked"`
	Skipped    int `json:"skipped"`
	Balanced   int `json:"balanced"`
	Unbalanced int `json:"unbalanced"`
}

func (s *Stats) add(l Line) {
	s.Total++
	switch {
	case l.Skipped:
		s.Skipped++
	case l.Result.Balanced:
		s.Checked++
		s.Balanced++
	default:
		s.Checked++
		s.Unbalanced++
	}
}

// Handler receives each processed line in order.
type Handler func(Line) error

// Driver runs lines through the checker.
type Driver struct {
	logger *slog.Logger
	stdin  io.Reader
}

// NewDriver creates a driver. A nil logger discards log output.
func NewDriver(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		logger: logger,
		stdin:  os.Stdin,
	}
}

// SetStdin replaces the reader used for StdinPath.
func (d *Driver) SetStdin(r io.Reader) {
	d.stdin = r
}

// MaxLineSize is the longest line Process accepts, in bytes.
const MaxLineSize = 16 * 1024 * 1024

// Process checks every line of r. Lines are trimmed; blank lines are passed to fn
// as skipped without being checked.
func (d *Driver) Process(r io.Reader, fn Handler) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	number := 0
	for scanner.Scan() {
		number++
		if err := d.emit(&stats, checkLine(number, scanner.Text()), fn); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read input: %w", err)
	}

	return stats, nil
}

func (d *Driver) emit(stats *Stats, line Line, fn Handler) error {
	d.logger.Debug("line processed",
		"line", line.Number,
		"skipped", line.Skipped,
		"balanced", line.Result.Balanced,
		"events", len(line.Result.Events))

	stats.add(line)
	return fn(line)
}

// ProcessFile opens path and processes it. A missing file yields an error
// wrapping ErrNotFound.
func (d *Driver) ProcessFile(path string, fn Handler) (Stats, error) {
	if path == StdinPath {
		d.logger.Debug("reading from stdin")
		return d.Process(d.stdin, fn)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Stats{}, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return Stats{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	d.logger.Debug("reading input file", "path", path)
	return d.Process(f, fn)
}

// CheckExpressions checks each expression as one line, numbered from 1.
// Embedded newlines stay part of the expression.
func (d *Driver) CheckExpressions(exprs []string, fn Handler) (Stats, error) {
	var stats Stats
	for i, expr := range exprs {
		if err := d.emit(&stats, checkLine(i+1, expr), fn); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func checkLine(number int, raw string) Line {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Line{Number: number, Skipped: true}
	}
	return Line{
		Number: number,
		Text:   text,
		Result: balance.Check(text),
	}
}
