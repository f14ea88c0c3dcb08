package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/open-cli-collective/balance-cli/internal/lines"
	"github.com/open-cli-collective/balance-cli/pkg/balance"
)

// ruleWidth is the width of the separator printed under each line header.
const ruleWidth = 50

// Report receives processed lines and writes them in the renderer's format.
type Report interface {
	// Line renders one processed line.
	Line(l lines.Line) error
	// Close finishes the report with the run's statistics.
	Close(stats lines.Stats) error
}

// NewReport returns a report writer for the renderer's format.
func (r *Renderer) NewReport() Report {
	switch r.format {
	case FormatJSON:
		return &jsonReport{r: r}
	case FormatPlain:
		return &plainReport{r: r}
	case FormatMarkdown:
		return &markdownReport{r: r}
	case FormatHTML:
		return &markdownReport{r: r, html: true}
	default:
		return &tableReport{r: r}
	}
}

// Label returns the action column text for an event.
func Label(ev balance.Event) string {
	switch ev.Action {
	case balance.ActionPush:
		return "PUSH"
	case balance.ActionPop:
		return fmt.Sprintf("POP '%c'", ev.Popped)
	default:
		return "POP ERROR"
	}
}

// Detail returns the stack column text for an event.
func (m Messages) Detail(ev balance.Event) string {
	switch ev.Action {
	case balance.ActionErrEmpty:
		return m.EmptyStack
	case balance.ActionErrMismatch:
		return fmt.Sprintf(m.Mismatch, ev.Expected, ev.Char)
	default:
		return "[" + balance.FormatStack(ev.Stack) + "]"
	}
}

// FinalText returns the end-of-scan summary row.
func (m Messages) FinalText(s *balance.Summary) string {
	if s.Empty {
		return m.FinalEmpty
	}
	return fmt.Sprintf(m.FinalPending, balance.FormatStack(s.Stack))
}

// TraceRow formats an event as a fixed-width trace row.
func TraceRow(ev balance.Event, m Messages) string {
	return fmt.Sprintf("%2d  | '%c'  | %-10s| %s", ev.Position, ev.Char, Label(ev), m.Detail(ev))
}

type tableReport struct {
	r *Renderer
}

func (t *tableReport) Line(l lines.Line) error {
	w := t.r.writer
	m := t.r.msgs
	dim := color.New(color.Faint)

	if l.Skipped {
		_, _ = dim.Fprintf(w, m.LineSkipped+"\n\n", l.Number)
		return nil
	}

	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(w, m.LineHeader+"\n", l.Number, l.Text)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintln(w, m.TraceHeader)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth-5))

	red := color.New(color.FgRed)
	for _, ev := range l.Result.Events {
		row := TraceRow(ev, m)
		if ev.Action.IsError() {
			_, _ = red.Fprintln(w, row)
			continue
		}
		fmt.Fprintln(w, row)
	}
	if l.Result.Final != nil {
		fmt.Fprintln(w, m.FinalText(l.Result.Final))
	}

	verdict := color.New(color.FgGreen, color.Bold)
	if !l.Result.Balanced {
		verdict = color.New(color.FgRed, color.Bold)
	}
	fmt.Fprintf(w, m.Result+"\n\n", verdict.Sprint(m.Verdict(l.Result.Balanced)))
	return nil
}

func (t *tableReport) Close(stats lines.Stats) error {
	if stats.Total == 0 {
		t.r.Warning(t.r.msgs.EmptyFile)
		return nil
	}
	dim := color.New(color.Faint)
	_, _ = dim.Fprintf(t.r.writer, t.r.msgs.Summary+"\n",
		stats.Checked, stats.Balanced, stats.Unbalanced, stats.Skipped)
	return nil
}

// plainReport writes tab-separated rows, each prefixed by the line number.
type plainReport struct {
	r *Renderer
}

func (p *plainReport) Line(l lines.Line) error {
	n := strconv.Itoa(l.Number)
	var rows [][]string

	if l.Skipped {
		rows = append(rows, []string{n, "skipped"})
		p.r.renderTableAsPlain(rows)
		return nil
	}

	for _, ev := range l.Result.Events {
		rows = append(rows, []string{
			n, "event",
			strconv.Itoa(ev.Position),
			string(ev.Char),
			ev.Action.String(),
			balance.FormatStack(ev.Stack),
		})
	}
	if f := l.Result.Final; f != nil {
		rows = append(rows, []string{n, "final", balance.FormatStack(f.Stack)})
	}
	rows = append(rows, []string{n, "result", p.r.msgs.Verdict(l.Result.Balanced), l.Text})

	p.r.renderTableAsPlain(rows)
	return nil
}

func (p *plainReport) Close(lines.Stats) error {
	return nil
}
