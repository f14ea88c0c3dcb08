package view

import (
	"github.com/open-cli-collective/balance-cli/internal/lines"
	"github.com/open-cli-collective/balance-cli/pkg/balance"
)

// JSONEvent is the JSON form of a trace event.
type JSONEvent struct {
	Position int      `json:"position"`
	Char     string   `json:"char"`
	Action   string   `json:"action"`
	Popped   string   `json:"popped,omitempty"`
	Expected string   `json:"expected,omitempty"`
	Stack    []string `json:"stack"`
}

// JSONSummary is the JSON form of the end-of-scan summary.
type JSONSummary struct {
	Stack []string `json:"stack"`
	Empty bool     `json:"empty"`
}

// JSONLine is the JSON form of one processed line.
type JSONLine struct {
	Number   int          `json:"number"`
	Text     string       `json:"text,omitempty"`
	Skipped  bool         `json:"skipped,omitempty"`
	Balanced bool         `json:"balanced"`
	Verdict  string       `json:"verdict,omitempty"`
	FailedAt int          `json:"failed_at,omitempty"`
	Events   []JSONEvent  `json:"events,omitempty"`
	Final    *JSONSummary `json:"final,omitempty"`
}

// JSONDocument is the complete JSON report.
type JSONDocument struct {
	Lines []JSONLine  `json:"lines"`
	Stats lines.Stats `json:"stats"`
}

type jsonReport struct {
	r   *Renderer
	doc JSONDocument
}

func (j *jsonReport) Line(l lines.Line) error {
	j.doc.Lines = append(j.doc.Lines, toJSONLine(l, j.r.msgs))
	return nil
}

func (j *jsonReport) Close(stats lines.Stats) error {
	j.doc.Stats = stats
	if j.doc.Lines == nil {
		j.doc.Lines = []JSONLine{}
	}
	return j.r.RenderJSON(j.doc)
}

func toJSONLine(l lines.Line, m Messages) JSONLine {
	if l.Skipped {
		return JSONLine{Number: l.Number, Skipped: true}
	}

	out := JSONLine{
		Number:   l.Number,
		Text:     l.Text,
		Balanced: l.Result.Balanced,
		Verdict:  m.Verdict(l.Result.Balanced),
		FailedAt: l.Result.FailedAt,
	}
	for _, ev := range l.Result.Events {
		je := JSONEvent{
			Position: ev.Position,
			Char:     string(ev.Char),
			Action:   ev.Action.String(),
			Stack:    runeStrings(ev.Stack),
		}
		if ev.Action == balance.ActionPop || ev.Action == balance.ActionErrMismatch {
			je.Popped = string(ev.Popped)
		}
		if ev.Action == balance.ActionErrMismatch {
			je.Expected = string(ev.Expected)
		}
		out.Events = append(out.Events, je)
	}
	if f := l.Result.Final; f != nil {
		out.Final = &JSONSummary{Stack: runeStrings(f.Stack), Empty: f.Empty}
	}
	return out
}

func runeStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
