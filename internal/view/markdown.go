package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-cli-collective/balance-cli/internal/lines"
)

// mdConverter renders markdown reports to HTML, with GFM tables.
var mdConverter = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>bal report</title>
</head>
<body>
`

const htmlTail = `</body>
</html>
`

// markdownReport buffers a markdown document and writes it on Close,
// optionally converted to HTML.
type markdownReport struct {
	r    *Renderer
	html bool
	buf  bytes.Buffer
}

func (m *markdownReport) Line(l lines.Line) error {
	msgs := m.r.msgs

	if l.Skipped {
		fmt.Fprintf(&m.buf, "_%s_\n\n", mdEscape(fmt.Sprintf(msgs.LineSkipped, l.Number)))
		return nil
	}

	fmt.Fprintf(&m.buf, "## %s\n\n", fmt.Sprintf(msgs.LineHeader, l.Number, codeSpan(l.Text)))

	if len(l.Result.Events) > 0 {
		m.buf.WriteString("| # | Char | Action | Stack |\n")
		m.buf.WriteString("|---:|:---:|---|---|\n")
		for _, ev := range l.Result.Events {
			fmt.Fprintf(&m.buf, "| %d | %s | %s | %s |\n",
				ev.Position,
				codeSpan(string(ev.Char)),
				mdEscape(Label(ev)),
				mdEscape(msgs.Detail(ev)))
		}
		m.buf.WriteString("\n")
	}

	if f := l.Result.Final; f != nil {
		fmt.Fprintf(&m.buf, "%s\n\n", mdEscape(msgs.FinalText(f)))
	}
	fmt.Fprintf(&m.buf, "**%s**\n\n", mdEscape(fmt.Sprintf(msgs.Result, msgs.Verdict(l.Result.Balanced))))
	return nil
}

func (m *markdownReport) Close(stats lines.Stats) error {
	if stats.Total == 0 {
		fmt.Fprintf(&m.buf, "%s\n", mdEscape(m.r.msgs.EmptyFile))
	} else {
		fmt.Fprintf(&m.buf, "---\n\n%s\n", mdEscape(fmt.Sprintf(m.r.msgs.Summary,
			stats.Checked, stats.Balanced, stats.Unbalanced, stats.Skipped)))
	}

	if !m.html {
		_, err := m.r.writer.Write(m.buf.Bytes())
		return err
	}

	var out bytes.Buffer
	out.WriteString(htmlHead)
	if err := mdConverter.Convert(m.buf.Bytes(), &out); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	out.WriteString(htmlTail)

	_, err := m.r.writer.Write(out.Bytes())
	return err
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
)

// mdEscape escapes characters with markdown meaning, including table pipes.
func mdEscape(s string) string {
	return mdEscaper.Replace(s)
}

// codeSpan wraps s in a code span whose fence is longer than any backtick run in s.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	fence := strings.Repeat("`", longest+1)
	if longest > 0 || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}
